package presenters

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// FailedResponse reports a business-rule refusal (duplicate like, missing
// recipe) without exposing any internal error detail.
func FailedResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: false,
		Message: message,
	})
}

// ErrorResponse echoes the error detail; only for validation failures and
// domain sentinels whose text is safe to show callers.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// InternalErrorResponse logs the underlying error server-side and surfaces
// only the generic message, so driver and infrastructure detail never reaches
// the client.
func InternalErrorResponse(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		Success: false,
		Message: message,
	})
}
