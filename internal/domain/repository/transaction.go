package repository

import "context"

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise, including on panic.
	// Repositories used inside fn must come from txRepoFactory.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewTodoRepository() TodoRepository
}
