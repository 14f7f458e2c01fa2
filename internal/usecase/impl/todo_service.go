package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
	"todolist/internal/usecase"

	"github.com/google/uuid"
)

const todoDeletedMessage = "Task deleted successfully"

// todoService implements the TodoUsecase interface.
type todoService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewTodoService is the constructor for todoService.
func NewTodoService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.TodoUsecase {
	return &todoService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a todo for the owner. A missing state becomes entity.DefaultTodoState.
func (srv *todoService) Create(ctx context.Context, ownerID uint, input usecase.CreateTodoInput) (*entity.Todo, error) {
	state := entity.DefaultTodoState
	if input.State != nil {
		state = *input.State
	}
	if !state.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(entity.ErrInvalidTodoState.Error())
	}

	todo := &entity.Todo{
		Title:       input.Title,
		Description: input.Description,
		State:       state,
		UserID:      ownerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTodoRepository().Create(ctx, todo); err != nil {
			return errors.Wrap(err, "failed to create todo")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Uint64("owner_id", uint64(ownerID)), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Todo created", slog.Uint64("todo_id", uint64(todo.ID)), slog.Uint64("owner_id", uint64(ownerID)))

	srv.publish(ctx, service.TodoEventCreated, todo)

	return todo, nil
}

// List returns the owner's todos matching the filter, in id order.
func (srv *todoService) List(ctx context.Context, ownerID uint, filter entity.TodoFilter) ([]*entity.Todo, error) {
	if err := filter.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var todos []*entity.Todo
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewTodoRepository().ListByOwner(ctx, ownerID, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list todos")
		}
		todos = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list todos", slog.Uint64("owner_id", uint64(ownerID)), slog.Any("error", err))

		return nil, err
	}

	return todos, nil
}

// Patch applies the present fields of patch to the owner's todo.
func (srv *todoService) Patch(ctx context.Context, ownerID, todoID uint, patch entity.TodoPatch) (*entity.Todo, error) {
	if err := patch.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var (
		todo    *entity.Todo
		changed = !patch.IsEmpty()
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.NewTodoRepository()

		found, err := todoRepo.FindByIDAndOwner(ctx, todoID, ownerID)
		if err != nil {
			return translateTodoLookupError(err)
		}
		todo = found

		// An empty patch still answers 404 for a foreign todo but writes nothing.
		if !changed {
			return nil
		}

		patch.Apply(found)
		if err := todoRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrTodoNotFound) {
				return translateTodoLookupError(err)
			}

			return errors.Wrap(err, "failed to update todo")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Todo patch rejected", slog.Uint64("todo_id", uint64(todoID)), slog.Any("error", err))

		return nil, err
	}

	if changed {
		srv.publish(ctx, service.TodoEventUpdated, todo)
	}

	return todo, nil
}

// Delete removes the owner's todo.
func (srv *todoService) Delete(ctx context.Context, ownerID, todoID uint) (*usecase.Message, error) {
	var todo *entity.Todo
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		todoRepo := repoFactory.NewTodoRepository()

		found, err := todoRepo.FindByIDAndOwner(ctx, todoID, ownerID)
		if err != nil {
			return translateTodoLookupError(err)
		}

		if err := todoRepo.Delete(ctx, todoID, ownerID); err != nil {
			if errors.Is(err, repository.ErrTodoNotFound) {
				return translateTodoLookupError(err)
			}

			return errors.Wrap(err, "failed to delete todo")
		}
		todo = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Todo delete rejected", slog.Uint64("todo_id", uint64(todoID)), slog.Any("error", err))

		return nil, err
	}

	srv.publish(ctx, service.TodoEventDeleted, todo)

	return &usecase.Message{Message: todoDeletedMessage}, nil
}

// publish emits a todo event after the write committed. Publishing never fails the request.
func (srv *todoService) publish(ctx context.Context, eventType service.TodoEventType, todo *entity.Todo) {
	if srv.publisher == nil || todo == nil {
		return
	}

	event := &service.TodoEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		TodoID:     todo.ID,
		OwnerID:    todo.UserID,
		State:      todo.State.String(),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishTodoEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish todo event",
			slog.String("event_type", string(eventType)),
			slog.Uint64("todo_id", uint64(todo.ID)),
			slog.Any("error", err),
		)
	}
}

// translateTodoLookupError folds "missing" and "owned by someone else" into one error.
func translateTodoLookupError(err error) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return errors.Wrap(domainerrors.ErrTodoNotFound, "todo lookup")
	}

	return errors.Wrap(err, "failed to find todo")
}
