package http

import (
	"github.com/gofiber/fiber/v2"

	"ferreteria-backend/internal/application/billing"
	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para clientes.
type ClientHandler struct {
	uc     *usecase.ClientUseCase
	saleUC *billing.SaleQueryUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, saleUC *billing.SaleQueryUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, saleUC: saleUC}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes con su cantidad de compras
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateClientRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Param        id  path  int  true  "ID del cliente"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Cliente con facturas"
// @Router       /api/clientes/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Purchases godoc
// @Summary      Compras de un cliente (ventas no anuladas)
// @Tags         clientes
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/clientes/{id}/compras [get]
func (h *ClientHandler) Purchases(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, err)
	}
	out, err := h.saleUC.ListClientPurchases(c.Context(), id, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
