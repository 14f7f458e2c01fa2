package repository

import (
	"context"

	"todolist/internal/domain/entity"
	"todolist/internal/errors"
)

// ErrTodoNotFound is returned when no todo matches the id and owner.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository persists todos. Every read and write is scoped by owner.
type TodoRepository interface {
	// Create persists a new todo and fills in its ID and timestamps.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByIDAndOwner returns the todo only when it belongs to ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error)

	// ListByOwner returns the owner's todos matching every set filter, ordered by id.
	ListByOwner(ctx context.Context, ownerID uint, filter entity.TodoFilter) ([]*entity.Todo, error)

	// Update writes title, description and state of an existing todo.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes the owner's todo.
	Delete(ctx context.Context, id, ownerID uint) error
}
