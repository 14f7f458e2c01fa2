// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	"todolist/internal/errors"

	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that reads field names from json tags and knows the
// "password" rule.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	err := validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	if err != nil {
		panic("validator: register password rule: " + err.Error())
	}

	return &RequestValidator{validate: validate}
}

// Validate checks i against its validate tags.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe turns validation failures into one line per field, e.g. "email: must be a valid email".
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		lines = append(lines, fieldErr.Field()+": "+describeTag(fieldErr))
	}

	return strings.Join(lines, "; ")
}

func describeTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field required"
	case "email":
		return "must be a valid email"
	case "password":
		return "must be at most 72 bytes"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of " + fieldErr.Param()
	default:
		return "failed " + fieldErr.Tag()
	}
}
