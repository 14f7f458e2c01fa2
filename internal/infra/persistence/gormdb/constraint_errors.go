package gormdb

import (
	"strings"

	"todolist/internal/errors"

	"gorm.io/gorm"
)

// constraint describes how one kind of integrity violation shows up. gorm's
// TranslateError maps most driver codes to a sentinel; the message fragments
// catch the cases a dialect leaves untranslated. Postgres SQLSTATE codes
// appear in pgx error text.
type constraint struct {
	sentinel  error
	fragments []string
}

var (
	uniqueViolation = constraint{
		sentinel:  gorm.ErrDuplicatedKey,
		fragments: []string{"unique constraint failed", "duplicate key", "23505"},
	}
	foreignKeyViolation = constraint{
		sentinel:  gorm.ErrForeignKeyViolated,
		fragments: []string{"foreign key constraint", "23503"},
	}
	checkViolation = constraint{
		sentinel:  gorm.ErrCheckConstraintViolated,
		fragments: []string{"check constraint", "23514"},
	}
	notNullViolation = constraint{
		fragments: []string{"not null constraint failed", "null value", "23502"},
	}
)

func (c constraint) matches(err error) bool {
	if err == nil {
		return false
	}
	if c.sentinel != nil && errors.Is(err, c.sentinel) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range c.fragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool     { return uniqueViolation.matches(err) }
func isForeignKeyConstraintViolation(err error) bool { return foreignKeyViolation.matches(err) }
func isCheckConstraintViolation(err error) bool      { return checkViolation.matches(err) }
func isNotNullConstraintViolation(err error) bool    { return notNullViolation.matches(err) }
