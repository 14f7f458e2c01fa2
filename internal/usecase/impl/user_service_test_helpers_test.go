package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todolist/internal/domain/repository"
	mockRepo "todolist/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// repoFixtures is a transaction manager whose Execute runs the callback
// against mock repositories.
type repoFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	todoRepo  *mockRepo.MockTodoRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	t.Helper()

	fx := repoFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		todoRepo:  mockRepo.NewMockTodoRepository(t),
	}
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().NewTodoRepository().Return(fx.todoRepo).Maybe()

	return fx
}

// expectTx makes the next Execute call run its callback once.
func (fx repoFixtures) expectTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Once()
}
