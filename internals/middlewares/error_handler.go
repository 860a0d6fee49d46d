package middlewares

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"

	helper "gradebook_backend/internals/helpers"
)

// ErrorHandler renders errors that escape handlers and middlewares
// in the same envelope the controllers use.
func ErrorHandler(logger log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, _ := helper.MapPGError(err)
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			level.Error(logger).Log("msg", "request failed", "method", c.Method(), "path", c.Path(), "err", err)
		}
		return helper.FromFiberError(c, err)
	}
}
