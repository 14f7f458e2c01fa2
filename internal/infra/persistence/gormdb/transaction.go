package gormdb

import (
	"context"

	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute delegates to gorm's Transaction, which also rolls back when fn
// panics. Errors from fn are returned untouched; begin and commit failures
// become ErrTransactionFailed.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var workErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		workErr = fn(txRepositories{tx: tx})

		return workErr
	})

	switch {
	case workErr != nil:
		return workErr
	case err != nil:
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	default:
		return nil
	}
}

type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository { return NewUserRepository(r.tx) }
func (r txRepositories) NewTodoRepository() repository.TodoRepository { return NewTodoRepository(r.tx) }
