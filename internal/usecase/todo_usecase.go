package usecase

import (
	"context"

	"todolist/internal/domain/entity"
)

// CreateTodoInput defines a new todo. A nil State means entity.DefaultTodoState.
type CreateTodoInput struct {
	Title       string
	Description *string
	State       *entity.TodoState
}

// TodoUsecase manages the caller's own todos. Todos of other users are invisible.
type TodoUsecase interface {
	Create(ctx context.Context, ownerID uint, input CreateTodoInput) (*entity.Todo, error)
	List(ctx context.Context, ownerID uint, filter entity.TodoFilter) ([]*entity.Todo, error)
	Patch(ctx context.Context, ownerID, todoID uint, patch entity.TodoPatch) (*entity.Todo, error)
	Delete(ctx context.Context, ownerID, todoID uint) (*Message, error)
}
