package entity

import "time"

// Todo is a task owned by exactly one User. The owner never changes.
type Todo struct {
	ID          uint
	Title       string
	Description *string // Optional free text.
	State       TodoState
	UserID      uint // Owner.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Nullable is a patch field that can be absent, set to a value, or set to
// null. The zero value is absent.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf is a present field holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null is a present field cleared to null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// TodoPatch carries the fields of a partial update. Title and State cannot be
// null, so nil means absent. Description distinguishes absent from null.
type TodoPatch struct {
	Title       *string
	Description Nullable[string]
	State       *TodoState
}

// IsEmpty reports whether the patch carries no fields at all.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && !p.Description.Set && p.State == nil
}

// Validate rejects a patch whose state is outside the enumeration.
func (p TodoPatch) Validate() error {
	if p.State != nil && !p.State.IsValid() {
		return ErrInvalidTodoState
	}

	return nil
}

// Apply merges the present fields into todo.
func (p TodoPatch) Apply(todo *Todo) {
	if p.Title != nil {
		todo.Title = *p.Title
	}
	if p.Description.Set {
		todo.Description = nil
		if p.Description.Value != nil {
			description := *p.Description.Value
			todo.Description = &description
		}
	}
	if p.State != nil {
		todo.State = *p.State
	}
}
