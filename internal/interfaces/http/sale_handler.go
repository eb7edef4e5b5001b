package http

import (
	"github.com/gofiber/fiber/v2"

	"ferreteria-backend/internal/application/billing"
	"ferreteria-backend/internal/application/dto"
)

// SaleHandler maneja las peticiones HTTP para ventas y sus líneas.
type SaleHandler struct {
	createUC *billing.CreateSaleUseCase
	linesUC  *billing.SaleLinesUseCase
	voidUC   *billing.VoidSaleUseCase
	queryUC  *billing.SaleQueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	createUC *billing.CreateSaleUseCase,
	linesUC *billing.SaleLinesUseCase,
	voidUC *billing.VoidSaleUseCase,
	queryUC *billing.SaleQueryUseCase,
) *SaleHandler {
	return &SaleHandler{createUC: createUC, linesUC: linesUC, voidUC: voidUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Crear venta
// @Description  Asigna número de comprobante, congela el precio unitario de
// @Description  cada línea y descuenta el stock en una sola transacción.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.createUC.CreateSale(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         ventas
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.queryUC.GetSale(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas (excluye anuladas salvo incluir_anuladas=true)
// @Tags         ventas
// @Produce      json
// @Param        q                 query  string  false  "Buscar por número de comprobante o cliente"
// @Param        incluir_anuladas  query  bool    false  "Incluir ventas anuladas"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.ListSalesRequest
	if err := c.QueryParser(&in); err != nil {
		return fail(c, err)
	}
	out, err := h.queryUC.ListSales(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Anular venta
// @Description  Marca la venta como anulada y devuelve el stock. Anular dos
// @Description  veces responde 409.
// @Tags         ventas
// @Param        id  path  int  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Venta ya anulada"
// @Router       /api/ventas/{id}/anular [post]
func (h *SaleHandler) Void(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.voidUC.Void(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLine godoc
// @Summary      Agregar línea a una venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la venta"
// @Param        body  body  dto.AddSaleLineRequest  true  "Línea"
// @Success      201   {object}  dto.SaleLineResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/ventas/{id}/items [post]
func (h *SaleHandler) AddLine(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.AddSaleLineRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.linesUC.AddLine(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLine godoc
// @Summary      Cambiar la cantidad de una línea (el precio congelado no cambia)
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la línea"
// @Param        body  body  dto.UpdateSaleLineRequest  true  "Cantidad"
// @Success      200   {object}  dto.SaleLineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/items/{id} [put]
func (h *SaleHandler) UpdateLine(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateSaleLineRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.linesUC.UpdateLine(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Eliminar una línea de venta
// @Tags         ventas
// @Param        id  path  int  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/items/{id} [delete]
func (h *SaleHandler) RemoveLine(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.linesUC.RemoveLine(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
