// Package repository declares the storage ports used by the use cases.
package repository

import (
	"context"

	"todolist/internal/domain/entity"
	"todolist/internal/errors"
)

// ErrUserNotFound is returned by lookups that match no row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts.
type UserRepository interface {
	// FindByID returns ErrUserNotFound when id is unknown.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail matches the address exactly.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsernameOrEmail returns the first user holding either the username or the email.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// List returns users ordered by id within the page window.
	List(ctx context.Context, page entity.Page) ([]*entity.User, error)

	// Create assigns user.ID and the timestamps. Unique violations surface as
	// ErrUserConflict.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites username, email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user and, through the foreign key, all of their todos.
	Delete(ctx context.Context, id uint) error
}
