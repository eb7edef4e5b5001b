package http

import (
	"github.com/gofiber/fiber/v2"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para pedidos a proveedores.
type OrderHandler struct {
	uc *usecase.PurchaseOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.PurchaseOrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
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

func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// MarkReceived godoc
// @Summary      Marcar pedido como recibido
// @Description  Da entrada al stock de cada línea. Recibir dos veces responde 409.
// @Tags         pedidos
// @Param        id  path  int  true  "ID del pedido"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "Pedido ya recibido"
// @Router       /api/pedidos/{id}/recibir [post]
func (h *OrderHandler) MarkReceived(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.MarkReceived(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
