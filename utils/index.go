package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorResponse writes {"success": false, "error": message}. The underlying
// error is logged, never sent to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	evt := log.Warn()
	if status >= fiber.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).
		Int("status", status).
		Str("path", c.Path()).
		Interface("requestId", c.Locals("requestId")).
		Msg(message)

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// SuccessResponse writes {"success": true} merged with fields.
func SuccessResponse(c *fiber.Ctx, status int, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// DataResponse writes {"success": true, "data": data}.
func DataResponse(c *fiber.Ctx, status int, data any) error {
	return SuccessResponse(c, status, fiber.Map{"data": data})
}

// IntOr dereferences p, falling back to def when p is nil.
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
