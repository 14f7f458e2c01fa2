package gormdb

import (
	"testing"

	"todolist/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		check      bool
		notNull    bool
	}{
		{name: "translated duplicate", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: users.email"), unique: true},
		{name: "postgres unique", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), unique: true},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "sqlite foreign key", err: errors.New("FOREIGN KEY constraint failed"), foreignKey: true},
		{name: "sqlite check", err: errors.New("CHECK constraint failed: chk_todos_state"), check: true},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: todos.title"), notNull: true},
		{name: "postgres not null", err: errors.New("null value in column \"title\" (SQLSTATE 23502)"), notNull: true},
		{name: "unrelated", err: errors.New("connection refused")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err), "unique")
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err), "foreign key")
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err), "check")
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err), "not null")
		})
	}
}
