package entity

import "todolist/internal/errors"

const (
	// DefaultPageLimit is the window size used when none is requested.
	DefaultPageLimit = 10

	// MinTitleFilterLength is the shortest accepted title filter.
	MinTitleFilterLength = 3
)

var (
	// ErrInvalidPage is returned for a limit below 1 or a negative offset.
	ErrInvalidPage = errors.New("limit must be >= 1 and offset must be >= 0")

	// ErrTitleFilterTooShort is returned for a title filter under MinTitleFilterLength characters.
	ErrTitleFilterTooShort = errors.New("title filter must have at least 3 characters")
)

// Page is an offset/limit window over a storage-ordered result set.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns the first window of DefaultPageLimit records.
func DefaultPage() Page {
	return Page{Limit: DefaultPageLimit}
}

// Validate checks the window bounds.
func (p Page) Validate() error {
	if p.Limit < 1 || p.Offset < 0 {
		return ErrInvalidPage
	}

	return nil
}

// TodoFilter narrows a todo listing. All present predicates must hold.
type TodoFilter struct {
	Title       *string    // Substring of the title.
	Description *string    // Substring of the description.
	State       *TodoState // Exact state.
	Page        Page
}

// Validate checks the filter before it reaches storage.
func (f TodoFilter) Validate() error {
	if err := f.Page.Validate(); err != nil {
		return err
	}
	if f.Title != nil && len([]rune(*f.Title)) < MinTitleFilterLength {
		return ErrTitleFilterTooShort
	}
	if f.State != nil && !f.State.IsValid() {
		return ErrInvalidTodoState
	}

	return nil
}
