// Package errors re-exports the standard matching helpers next to the
// pkg/errors constructors, so call sites need one import and every annotated
// error records where it was created.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New makes a sentinel. Sentinels carry no stack.
func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool    { return stderrors.Is(err, target) }
func As(err error, target any) bool { return stderrors.As(err, target) }

// Wrap returns nil for a nil err.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
