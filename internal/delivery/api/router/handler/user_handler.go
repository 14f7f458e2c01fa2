package handler

import (
	"todolist/internal/delivery/api/response"
	"todolist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler holds dependencies for account handlers
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// UserRequest is the body of account creation and replacement.
type UserRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return err
	}

	users, err := h.userUC.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return response.OK(c, toUserList(users))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toUserPublic(user))
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toUserPublic(user))
}

// UpdateUser handles PUT /users/:id. Only the account owner may call it.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateSelf(c.Request().Context(), caller, id, usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toUserPublic(user))
}

// DeleteUser handles DELETE /users/:id. Only the account owner may call it.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	message, err := h.userUC.DeleteSelf(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Message(c, message.Message)
}
