package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todolist/config"
	deliverycontext "todolist/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, requestID string, handler echo.HandlerFunc, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Use(mw...)
	e.GET("/", handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var fromEcho, fromContext string
	handler := func(c echo.Context) error {
		fromEcho = deliverycontext.GetRequestID(c)
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	}

	rec := serve(t, "client-id-1", handler, NewRequestIDMiddleware(slog.Default()).Process)

	assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id-1", fromEcho)
	assert.Equal(t, "client-id-1", fromContext)
}

func TestRequestIDMiddleware_ReplacesUnusableIDs(t *testing.T) {
	for _, supplied := range []string{"", "has space", strings.Repeat("a", maxRequestIDLength+1)} {
		rec := serve(t, supplied, func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		}, NewRequestIDMiddleware(slog.Default()).Process)

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		require.NoError(t, err, supplied)
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog bool
	}{
		{name: "debug logs every request", debug: true, status: http.StatusOK, wantLog: true},
		{name: "quiet mode skips success", debug: false, status: http.StatusOK, wantLog: false},
		{name: "quiet mode keeps server errors", debug: false, status: http.StatusInternalServerError, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			rec := serve(t, "", func(c echo.Context) error {
				return c.NoContent(tt.status)
			}, NewLoggerMiddleware(logger, cfg).Handle)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), "request served"))
		})
	}
}

func TestLoggerMiddleware_RendersHandlerErrorOnce(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	rec := serve(t, "", func(c echo.Context) error {
		return echo.ErrForbidden
	}, NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg).Handle)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, buf.String(), "status=403")
	assert.Contains(t, buf.String(), "level=WARN")
}
