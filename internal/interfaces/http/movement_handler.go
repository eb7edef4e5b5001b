package http

import (
	"github.com/gofiber/fiber/v2"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos de stock.
type MovementHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock manual
// @Description  Una entrada suma al stock del producto; una salida resta. Una
// @Description  salida que dejaría stock negativo responde 409.
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := BindAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.RegisterMovement(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         movimientos
// @Produce      json
// @Param        producto_id  query  int     false  "Filtrar por producto"
// @Param        tipo         query  string  false  "entrada o salida"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := BindQueryAndValidate(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.ListMovements(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
