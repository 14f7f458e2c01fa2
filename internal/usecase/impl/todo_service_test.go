package impl

import (
	"context"
	"testing"

	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	"todolist/internal/errors"
	mockSvc "todolist/internal/mocks/service"
	"todolist/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwnerID uint = 1

type todoServiceFixtures struct {
	repoFixtures
	service   usecase.TodoUsecase
	publisher *mockSvc.MockEventPublisher
}

func createTestTodoService(t *testing.T) todoServiceFixtures {
	repos := newRepoFixtures(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return todoServiceFixtures{
		repoFixtures: repos,
		service:      NewTodoService(repos.txManager, publisher, newDiscardLogger()),
		publisher:    publisher,
	}
}

func eventOfType(eventType service.TodoEventType, todoID uint) any {
	return mock.MatchedBy(func(event *service.TodoEvent) bool {
		return event.Type == eventType &&
			event.TodoID == todoID &&
			event.OwnerID == testOwnerID &&
			event.EventID != ""
	})
}

func storedTodo() *entity.Todo {
	return &entity.Todo{
		ID:          10,
		Title:       "write report",
		Description: ptr("quarterly"),
		State:       entity.TodoStateTodo,
		UserID:      testOwnerID,
	}
}

func TestTodoService_Create_DefaultsState(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	fx.expectTx()
	fx.todoRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.State == entity.TodoStateTodo && todo.UserID == testOwnerID && todo.Title == "buy milk"
		})).
		Run(func(_ context.Context, todo *entity.Todo) {
			todo.ID = 10
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishTodoEvent(mock.Anything, mock.MatchedBy(func(event *service.TodoEvent) bool {
			return event.Type == service.TodoEventCreated && event.RequestID == "req-1" && event.State == "todo"
		})).
		Return(nil)

	todo, err := fx.service.Create(ctx, testOwnerID, usecase.CreateTodoInput{Title: "buy milk"})

	require.NoError(t, err)
	assert.Equal(t, uint(10), todo.ID)
	assert.Equal(t, entity.TodoStateTodo, todo.State)
	assert.Nil(t, todo.Description)
}

func TestTodoService_Create_InvalidState(t *testing.T) {
	fx := createTestTodoService(t)

	todo, err := fx.service.Create(context.Background(), testOwnerID, usecase.CreateTodoInput{
		Title: "buy milk",
		State: ptr(entity.TodoState("archived")),
	})

	assert.Nil(t, todo)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTodoService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestTodoService(t)

	fx.expectTx()
	fx.todoRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Todo")).Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	todo, err := fx.service.Create(context.Background(), testOwnerID, usecase.CreateTodoInput{
		Title: "buy milk",
		State: ptr(entity.TodoStateDraft),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TodoStateDraft, todo.State)
}

func TestTodoService_List(t *testing.T) {
	fx := createTestTodoService(t)
	filter := entity.TodoFilter{Title: ptr("report"), State: ptr(entity.TodoStateTodo), Page: entity.DefaultPage()}
	todos := []*entity.Todo{storedTodo()}

	fx.expectTx()
	fx.todoRepo.EXPECT().ListByOwner(mock.Anything, testOwnerID, filter).Return(todos, nil)

	listed, err := fx.service.List(context.Background(), testOwnerID, filter)

	require.NoError(t, err)
	assert.Equal(t, todos, listed)
}

func TestTodoService_List_RejectsBadFilterBeforeStorage(t *testing.T) {
	fx := createTestTodoService(t)

	filters := []entity.TodoFilter{
		{Title: ptr("ab"), Page: entity.DefaultPage()},
		{Page: entity.Page{Limit: 0}},
		{Page: entity.Page{Limit: 10, Offset: -1}},
		{State: ptr(entity.TodoState("archived")), Page: entity.DefaultPage()},
	}
	for _, filter := range filters {
		listed, err := fx.service.List(context.Background(), testOwnerID, filter)
		assert.Nil(t, listed)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestTodoService_Patch_AppliesOnlyPresentFields(t *testing.T) {
	fx := createTestTodoService(t)
	patch := entity.TodoPatch{State: ptr(entity.TodoStateDone)}

	fx.expectTx()
	fx.todoRepo.EXPECT().FindByIDAndOwner(mock.Anything, uint(10), testOwnerID).Return(storedTodo(), nil)
	fx.todoRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.Title == "write report" &&
				todo.Description != nil && *todo.Description == "quarterly" &&
				todo.State == entity.TodoStateDone
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, eventOfType(service.TodoEventUpdated, 10)).Return(nil)

	todo, err := fx.service.Patch(context.Background(), testOwnerID, 10, patch)

	require.NoError(t, err)
	assert.Equal(t, entity.TodoStateDone, todo.State)
	assert.Equal(t, "write report", todo.Title)
}

func TestTodoService_Patch_NullDescriptionClearsIt(t *testing.T) {
	fx := createTestTodoService(t)

	fx.expectTx()
	fx.todoRepo.EXPECT().FindByIDAndOwner(mock.Anything, uint(10), testOwnerID).Return(storedTodo(), nil)
	fx.todoRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.Description == nil && todo.Title == "write report"
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, eventOfType(service.TodoEventUpdated, 10)).Return(nil)

	todo, err := fx.service.Patch(context.Background(), testOwnerID, 10, entity.TodoPatch{Description: entity.Null[string]()})

	require.NoError(t, err)
	assert.Nil(t, todo.Description)
}

func TestTodoService_Patch_EmptyPatchWritesNothing(t *testing.T) {
	fx := createTestTodoService(t)

	fx.expectTx()
	fx.todoRepo.EXPECT().FindByIDAndOwner(mock.Anything, uint(10), testOwnerID).Return(storedTodo(), nil)

	todo, err := fx.service.Patch(context.Background(), testOwnerID, 10, entity.TodoPatch{})

	require.NoError(t, err)
	assert.Equal(t, "write report", todo.Title)
	fx.todoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishTodoEvent", mock.Anything, mock.Anything)
}

func TestTodoService_Patch_NotFound(t *testing.T) {
	fx := createTestTodoService(t)

	fx.expectTx()
	fx.todoRepo.EXPECT().FindByIDAndOwner(mock.Anything, uint(10), testOwnerID).Return(nil, repository.ErrTodoNotFound)

	todo, err := fx.service.Patch(context.Background(), testOwnerID, 10, entity.TodoPatch{Title: ptr("x")})

	assert.Nil(t, todo)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
}

func TestTodoService_Patch_InvalidState(t *testing.T) {
	fx := createTestTodoService(t)

	todo, err := fx.service.Patch(context.Background(), testOwnerID, 10, entity.TodoPatch{State: ptr(entity.TodoState("archived"))})

	assert.Nil(t, todo)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTodoService_Delete_Success(t *testing.T) {
	fx := createTestTodoService(t)

	fx.expectTx()
	fx.todoRepo.EXPECT().FindByIDAndOwner(mock.Anything, uint(10), testOwnerID).Return(storedTodo(), nil)
	fx.todoRepo.EXPECT().Delete(mock.Anything, uint(10), testOwnerID).Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, eventOfType(service.TodoEventDeleted, 10)).Return(nil)

	message, err := fx.service.Delete(context.Background(), testOwnerID, 10)

	require.NoError(t, err)
	assert.Equal(t, "Task deleted successfully", message.Message)
}

func TestTodoService_Delete_NotFound(t *testing.T) {
	fx := createTestTodoService(t)

	fx.expectTx()
	fx.todoRepo.EXPECT().FindByIDAndOwner(mock.Anything, uint(10), testOwnerID).Return(nil, repository.ErrTodoNotFound)

	message, err := fx.service.Delete(context.Background(), testOwnerID, 10)

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
}
