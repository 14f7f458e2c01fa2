package handler

import (
	"todolist/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to Fast Zero"

// Root greets API clients.
func Root(c echo.Context) error {
	return response.Message(c, welcomeMessage)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
