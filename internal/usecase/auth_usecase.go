// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"todolist/internal/domain/entity"
)

// TokenTypeBearer is the only token type the service issues.
const TokenTypeBearer = "Bearer"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase turns credentials into tokens and tokens back into users.
type AuthUsecase interface {
	// Resolve maps a bearer token to its user. Every failure is ErrCredentialsInvalid.
	Resolve(ctx context.Context, token string) (*entity.User, error)

	// Login checks the password of the account registered under the email.
	Login(ctx context.Context, input LoginInput) (*Token, error)

	// Refresh issues a fresh token for an already authenticated user.
	Refresh(ctx context.Context, user *entity.User) (*Token, error)
}
