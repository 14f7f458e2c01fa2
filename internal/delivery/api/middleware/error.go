package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"todolist/internal/delivery/api/response"
	deliverycontext "todolist/internal/delivery/context"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if c.Response().Committed {
		logger.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	// Domain errors carry their own status and code
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}
		m.render(c, logger, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Routing, body limit and other echo-level failures
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		m.render(c, logger, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.render(c, logger, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), "")
}

func (m *ErrorMiddleware) render(c echo.Context, logger *slog.Logger, status int, code, message, details string) {
	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(status); err != nil {
			logger.Warn("Failed to write error response", slog.Any("error", err))
		}

		return
	}

	if err := response.Error(c, status, code, message, details); err != nil {
		logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
