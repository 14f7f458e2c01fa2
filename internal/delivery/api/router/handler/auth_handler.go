package handler

import (
	"todolist/internal/delivery/api/response"
	"todolist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler issues access tokens.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// LoginRequest follows the OAuth2 password flow: "username" carries the email.
// It is accepted as a form or as JSON, and "email" works as an alias.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required_without=Email"`
	Email    string `json:"email" form:"email" validate:"required_without=Username"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r LoginRequest) email() string {
	if r.Username != "" {
		return r.Username
	}

	return r.Email
}

// Login handles POST /auth/token
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.email(),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toTokenResponse(token))
}

// RefreshToken handles POST /auth/refresh_token
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	token, err := h.authUC.Refresh(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return response.OK(c, toTokenResponse(token))
}
