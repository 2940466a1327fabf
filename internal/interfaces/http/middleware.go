package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/lager-api/internal/infrastructure/metrics"
	"github.com/jhoicas/lager-api/pkg/logger"
)

// HeaderRequestID cabecera con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un request id, deja un sublogger en el contexto de la
// petición (zerolog.Ctx) y registra método, ruta, status y duración.
// m puede ser nil.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		sub := log.With().Str("request_id", reqID).Logger()
		c.SetUserContext(sub.WithContext(c.UserContext()))

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path
		if m != nil {
			m.ObserveRequest(c.Method(), route, status, elapsed)
		}

		ev := sub.Info()
		if status >= fiber.StatusInternalServerError {
			ev = sub.Error()
		}
		if id := GetIdentity(c); id != nil {
			ev = ev.Int64("user_id", id.ID)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("petición HTTP")
		return nil
	}
}
