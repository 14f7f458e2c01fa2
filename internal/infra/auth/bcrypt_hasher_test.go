package auth

import (
	"strings"
	"testing"

	"todolist/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secret")

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "same password", password: "secret", hash: hash, want: true},
		{name: "different password", password: "Secret", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "secret", hash: "not-a-bcrypt-hash", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Check(tt.password, tt.hash))
		})
	}
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_RejectsPasswordsOverLimit(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_Cost(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 5

	tests := []struct {
		name   string
		hasher func() any
		want   int
	}{
		{name: "explicit", hasher: func() any { return NewBcryptHasherWithCost(6) }, want: 6},
		{name: "from config", hasher: func() any { return NewBcryptHasher(cfg) }, want: 5},
		{name: "too high falls back", hasher: func() any { return NewBcryptHasherWithCost(bcrypt.MaxCost + 1) }, want: bcrypt.DefaultCost},
		{name: "too low falls back", hasher: func() any { return NewBcryptHasherWithCost(bcrypt.MinCost - 1) }, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hasher().(*bcryptHasher).cost)
		})
	}
}
