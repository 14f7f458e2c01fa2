package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"todolist/config"
	deliverycontext "todolist/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes the access log. Outside debug mode only 5xx
// responses are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug, now: time.Now}
}

// Handle renders a handler error itself, so the status it logs is final and
// the error never reaches the error handler a second time.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		if status := c.Response().Status; m.debug || status >= http.StatusInternalServerError {
			m.write(c, status, m.now().Sub(start), err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) write(c echo.Context, status int, latency time.Duration, err error) {
	req := c.Request()

	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs,
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	)
	if ua := req.UserAgent(); ua != "" {
		attrs = append(attrs, slog.String("user_agent", ua))
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), levelForStatus(status), "request served", attrs...)
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
