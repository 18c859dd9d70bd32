package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Credito-api/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// RequestLogger registra cada petición (método, ruta, status, latencia) y
// propaga o genera X-Request-ID. /health no se registra.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}
		start := time.Now()

		requestID := c.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(headerRequestID, requestID)

		err := c.Next()
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError || err != nil {
			ev = log.Error()
		}
		if err != nil {
			ev = ev.Err(err)
		} else if herr, ok := c.Locals(LocalError).(error); ok {
			ev = ev.Err(herr)
		}
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
