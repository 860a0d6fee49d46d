package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type normalizer interface{ Normalize() }

// BindJSON parses the body into dst, normalizes it when dst knows how, and
// validates it. Errors are meant for FromFiberError.
func BindJSON(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	return v.Struct(dst)
}
