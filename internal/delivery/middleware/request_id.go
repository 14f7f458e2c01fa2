package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "todolist/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware gives every request an id, echoes it in X-Request-Id
// and puts a logger tagged with it on the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process keeps an id sent by the client when it is usable and generates a
// UUID otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := sanitizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if id == "" {
			id = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		req := c.Request()
		ctx := deliverycontext.WithLogger(
			deliverycontext.WithRequestID(req.Context(), id),
			m.logger.With(slog.String("request_id", id)),
		)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// sanitizeRequestID returns "" for ids over maxRequestIDLength or holding
// anything but visible ASCII.
func sanitizeRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxRequestIDLength {
		return ""
	}
	if strings.ContainsFunc(raw, func(r rune) bool { return r < '!' || r > '~' }) {
		return ""
	}

	return raw
}
