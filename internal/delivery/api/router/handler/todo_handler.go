package handler

import (
	"strings"

	"todolist/internal/delivery/api/response"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC usecase.TodoUsecase
}

// TodoHandler serves the caller's todo list.
type TodoHandler struct {
	todoUC usecase.TodoUsecase
}

// NewTodoHandler is the constructor for TodoHandler
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{todoUC: params.TodoUC}
}

// CreateTodoRequest is the body of POST /todos. State defaults to "todo".
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	State       *string `json:"state" validate:"omitnil,oneof=draft todo doing done trash"`
}

// PatchTodoRequest is the body of PATCH /todos/:id. Absent fields stay
// unchanged; "description": null clears the description.
type PatchTodoRequest struct {
	Title       *string `json:"title" validate:"omitnil,max=255"`
	Description *string `json:"description"`
	State       *string `json:"state" validate:"omitnil,oneof=draft todo doing done trash"`

	descriptionSet bool
}

// UnmarshalJSON records whether description was sent, null included.
func (r *PatchTodoRequest) UnmarshalJSON(data []byte) error {
	type fields PatchTodoRequest
	if err := json.Unmarshal(data, (*fields)(r)); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	for key := range keys {
		if strings.EqualFold(key, "description") {
			r.descriptionSet = true
		}
	}

	return nil
}

func (r *PatchTodoRequest) description() entity.Nullable[string] {
	if !r.descriptionSet && r.Description == nil {
		return entity.Nullable[string]{}
	}

	return entity.Nullable[string]{Set: true, Value: r.Description}
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := parseOptionalState(req.State)
	if err != nil {
		return err
	}

	todo, err := h.todoUC.Create(c.Request().Context(), owner.ID, usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		State:       state,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toTodoPublic(todo))
}

// ListTodos handles GET /todos with optional title, description and state filters.
func (h *TodoHandler) ListTodos(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	page, err := queryPage(c)
	if err != nil {
		return err
	}

	// An empty description or state filter matches everything.
	state, err := parseOptionalState(nonEmptyQuery(c, "state"))
	if err != nil {
		return err
	}

	todos, err := h.todoUC.List(c.Request().Context(), owner.ID, entity.TodoFilter{
		Title:       optionalQuery(c, "title"),
		Description: nonEmptyQuery(c, "description"),
		State:       state,
		Page:        page,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toTodoList(todos))
}

// PatchTodo handles PATCH /todos/:id
func (h *TodoHandler) PatchTodo(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req PatchTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := parseOptionalState(req.State)
	if err != nil {
		return err
	}

	todo, err := h.todoUC.Patch(c.Request().Context(), owner.ID, id, entity.TodoPatch{
		Title:       req.Title,
		Description: req.description(),
		State:       state,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toTodoPublic(todo))
}

// DeleteTodo handles DELETE /todos/:id
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	message, err := h.todoUC.Delete(c.Request().Context(), owner.ID, id)
	if err != nil {
		return err
	}

	return response.Message(c, message.Message)
}

func parseOptionalState(raw *string) (*entity.TodoState, error) {
	if raw == nil {
		return nil, nil
	}

	state, err := entity.ParseTodoState(*raw)
	if err != nil {
		names := make([]string, 0, len(entity.TodoStates()))
		for _, s := range entity.TodoStates() {
			names = append(names, s.String())
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("state: must be one of " + strings.Join(names, " "))
	}

	return &state, nil
}
