package gormdb

import (
	"context"

	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/errors"
	"todolist/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// todoRepository implements the repository.TodoRepository interface.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{
		db: db,
	}
}

// Create persists a new todo.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Omit("User").Create(todoM).Error; err != nil {
		return translateTodoWriteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// FindByIDAndOwner looks the todo up by id within the owner's rows only.
func (repo *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	var todoM model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find todo")
	}

	return toTodoDomain(&todoM), nil
}

// ListByOwner applies the filter conjunctively on top of the owner scope.
func (repo *todoRepository) ListByOwner(ctx context.Context, ownerID uint, filter entity.TodoFilter) ([]*entity.Todo, error) {
	var todoModels []*model.TodoModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID)

	if filter.Title != nil {
		query = query.Where("title LIKE ?", "%"+*filter.Title+"%")
	}
	if filter.Description != nil {
		query = query.Where("description LIKE ?", "%"+*filter.Description+"%")
	}
	if filter.State != nil {
		query = query.Where("state = ?", filter.State.String())
	}

	if err := query.
		Order("id ASC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&todoModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list todos")
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// Update writes the editable columns of the owner's todo.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	now := repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ? AND user_id = ?", todo.ID, todo.UserID).
		Updates(map[string]any{
			"title":       todo.Title,
			"description": todo.Description,
			"state":       todo.State.String(),
			"updated_at":  now,
		})
	if result.Error != nil {
		return translateTodoWriteError(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	todo.UpdatedAt = now

	return nil
}

// Delete removes the owner's todo.
func (repo *todoRepository) Delete(ctx context.Context, id, ownerID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TodoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

func translateTodoWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUserNotFound.WrapMessage("todo owner does not exist")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid todo state")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required todo information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// toTodoDomain converts a GORM TodoModel to a domain Todo entity.
func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		State:       entity.TodoState(data.State),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTodoDomain converts a domain Todo entity to a GORM TodoModel for persistence.
func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		State:       data.State.String(),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
