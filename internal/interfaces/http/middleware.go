package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Licencias-api/pkg/logger"
)

// RequestID asigna un identificador UUID a cada petición (header X-Request-ID).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// AccessLog registra cada petición atendida: método, ruta, estado, latencia y
// request id. Se loguea después de ejecutar la cadena para conocer el estado.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("petición atendida")

		return err
	}
}
