// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		todoHandler:    params.TodoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths are registered without a trailing slash; the server strips it before routing.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate

	// Accounts: reads and sign-up are public, mutations are self-service
	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser, authenticated)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, authenticated)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Login)
		authGroup.POST("/refresh_token", r.authHandler.RefreshToken, authenticated)
	}

	todosGroup := e.Group("/todos")
	todosGroup.Use(authenticated)
	{
		todosGroup.POST("", r.todoHandler.CreateTodo)
		todosGroup.GET("", r.todoHandler.ListTodos)
		todosGroup.PATCH("/:id", r.todoHandler.PatchTodo)
		todosGroup.DELETE("/:id", r.todoHandler.DeleteTodo)
	}
}
