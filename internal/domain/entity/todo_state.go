package entity

import (
	"slices"

	"todolist/internal/errors"
)

// TodoState is the closed set of states a Todo can be in.
// Any state may be replaced by any other; only membership is enforced.
type TodoState string

const (
	TodoStateDraft TodoState = "draft"
	TodoStateTodo  TodoState = "todo"
	TodoStateDoing TodoState = "doing"
	TodoStateDone  TodoState = "done"
	TodoStateTrash TodoState = "trash"

	// DefaultTodoState is used when a Todo is created without a state.
	DefaultTodoState = TodoStateTodo
)

// ErrInvalidTodoState is returned when a string is not one of the TodoState values.
var ErrInvalidTodoState = errors.New("invalid todo state")

var todoStates = []TodoState{
	TodoStateDraft,
	TodoStateTodo,
	TodoStateDoing,
	TodoStateDone,
	TodoStateTrash,
}

// TodoStates returns every valid state in declaration order.
func TodoStates() []TodoState {
	return slices.Clone(todoStates)
}

// String returns the string representation of the TodoState.
func (s TodoState) String() string {
	return string(s)
}

// IsValid checks if the TodoState is a valid value.
func (s TodoState) IsValid() bool {
	return slices.Contains(todoStates, s)
}

// ParseTodoState converts raw input into a TodoState, rejecting unknown values.
func ParseTodoState(raw string) (TodoState, error) {
	state := TodoState(raw)
	if !state.IsValid() {
		return "", errors.Wrapf(ErrInvalidTodoState, "%q", raw)
	}

	return state, nil
}
