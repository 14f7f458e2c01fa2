package usecase

import (
	"context"

	"todolist/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput replaces every mutable field of an account.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

// --- Output DTOs ---

// Message is a human-readable acknowledgement.
type Message struct {
	Message string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	List(ctx context.Context, page entity.Page) ([]*entity.User, error)
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	UpdateSelf(ctx context.Context, caller *entity.User, targetID uint, input UpdateUserInput) (*entity.User, error)
	DeleteSelf(ctx context.Context, caller *entity.User, targetID uint) (*Message, error)
}
