package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error hasil service/Transaction (biasanya
// *fiber.Error) menjadi response JSON konsisten via JsonError.
// Validator failures jadi 422, error database dipetakan lewat MapPGError;
// sisanya 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(c, ve)
	}
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
