package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type titled struct {
	Title *string `json:"title" validate:"omitnil,max=255"`
}

func TestNew_RegistersPasswordRule(t *testing.T) {
	var v *RequestValidator
	require.NotPanics(t, func() { v = New() })

	assert.NoError(t, v.Validate(&signUp{Email: "a@b.io", Password: strings.Repeat("p", MaxPasswordBytes)}))

	err := v.Validate(&signUp{Email: "a@b.io", Password: strings.Repeat("p", MaxPasswordBytes+1)})
	require.Error(t, err)
	assert.Equal(t, "password: must be at most 72 bytes", Describe(err))
}

func TestDescribe_UsesJSONNamesAndJoinsFailures(t *testing.T) {
	err := New().Validate(&signUp{Email: "nope"})

	require.Error(t, err)
	assert.Equal(t, "email: must be a valid email; password: field required", Describe(err))
}

func TestValidate_MaxCountsCharacters(t *testing.T) {
	v := New()
	atLimit := strings.Repeat("é", 255)
	overLimit := strings.Repeat("a", 256)

	assert.NoError(t, v.Validate(&titled{Title: &atLimit}))
	assert.NoError(t, v.Validate(&titled{}))

	err := v.Validate(&titled{Title: &overLimit})
	require.Error(t, err)
	assert.Equal(t, "title: must be at most 255", Describe(err))
}
