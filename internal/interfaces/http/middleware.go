package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// HTTPRecorder cuenta peticiones terminadas (lo implementa *metrics.Metrics).
type HTTPRecorder interface {
	HTTPRequest(method, path string, status int)
}

// RequestID propaga X-Request-ID o genera un UUID nuevo.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	})
}

func requestID(c *fiber.Ctx) string {
	return localString(c, LocalRequestID)
}

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := responseStatus(c, err)
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// Metrics cuenta cada petición por método, patrón de ruta y status. /metrics no se cuenta.
func Metrics(rec HTTPRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		err := c.Next()

		// Patrón (/api/clientes/:id) para no explotar la cardinalidad.
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		rec.HTTPRequest(c.Method(), path, responseStatus(c, err))
		return err
	}
}

// responseStatus: si el handler devolvió error, el ErrorHandler global aún no escribió la respuesta.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
