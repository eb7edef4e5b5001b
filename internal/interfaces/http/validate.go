package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ferreteria-backend/internal/domain"
)

var validate = validator.New()

// BindAndValidate parsea el cuerpo JSON en dst y lo valida con las etiquetas
// validate. Errores de parseo devuelven ErrInvalidInput; errores de validación
// devuelven validator.ValidationErrors.
func BindAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.ErrInvalidInput
	}
	return validate.Struct(dst)
}

// BindQueryAndValidate parsea los query params en dst y los valida.
func BindQueryAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return domain.ErrInvalidInput
	}
	return validate.Struct(dst)
}
