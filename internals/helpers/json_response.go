// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}

	resp := ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	}
	return c.Status(status).JSON(resp)
}

// JsonValidationError: khusus error validasi (422)
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	resp := ErrorResponse{
		Success:   false,
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
}

// ValidationError renders validator.v10 failures as a field -> tags map.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	return JsonValidationError(c, fields)
}

/* ===============================
   JSON responses (standard success)
=================================*/

// success writes {success, message, data[, pagination]} with a fallback
// message when the caller passes none.
func success(c *fiber.Ctx, status int, fallback, message string, data any, meta *Meta) error {
	if strings.TrimSpace(message) == "" {
		message = fallback
	}
	body := fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	}
	if meta != nil {
		body["pagination"] = meta
	}
	return c.Status(status).JSON(body)
}

// JsonList: list dengan pagination opsional
func JsonList(c *fiber.Ctx, message string, data any, meta *Meta) error {
	return success(c, fiber.StatusOK, "ok", message, data, meta)
}

// JsonOK: GET detail dan aksi lain tanpa resource baru
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return success(c, fiber.StatusOK, "ok", message, data, nil)
}

// JsonCreated: POST yang membuat resource
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return success(c, fiber.StatusCreated, "created", message, data, nil)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return success(c, fiber.StatusOK, "updated", message, data, nil)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return success(c, fiber.StatusOK, "deleted", message, data, nil)
}
