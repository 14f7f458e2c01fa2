// Package response renders JSON bodies for the API.
package response

import (
	"net/http"

	deliverycontext "todolist/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail    string `json:"detail"`            // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	RequestID string `json:"request_id"`        // Request tracking ID
	Details   string `json:"details,omitempty"` // Field-level reasons, 4xx only
}

// MessageResponse acknowledges an operation with a sentence.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes data with statusCode.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes data with 200.
func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Created writes data with 201.
func Created(c echo.Context, data any) error {
	return JSON(c, http.StatusCreated, data)
}

// Message writes {"message": message} with 200.
func Message(c echo.Context, message string) error {
	return OK(c, MessageResponse{Message: message})
}

// Error writes an error body. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = ""
	}
	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	return c.JSON(statusCode, ErrorResponse{
		Detail:    message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
		Details:   details,
	})
}
