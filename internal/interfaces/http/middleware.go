package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// LocalRequestID clave del request id en los locals de Fiber.
const LocalRequestID = "request_id"

// RequestLogger devuelve un middleware que asigna un request id y registra
// cada petición con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.New().String()
		c.Locals(LocalRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// GetRequestID devuelve el request id asignado por RequestLogger ("" si no hay).
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalRequestID).(string); ok {
		return v
	}
	return ""
}

// internalError responde 500 incluyendo el request id para correlación con los logs.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:      "INTERNAL",
		Message:   err.Error(),
		RequestID: GetRequestID(c),
	})
}
