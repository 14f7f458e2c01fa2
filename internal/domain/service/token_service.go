package service

import "todolist/internal/errors"

// ErrInvalidToken is returned by Decode for any token that cannot be trusted:
// malformed, bad signature, unexpected algorithm or expired.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and decodes signed, expiring bearer tokens.
type TokenService interface {
	// Issue copies claims, stamps exp = now + TTL and signs the result.
	Issue(claims map[string]any) (string, error)

	// Decode verifies the signature and expiry and returns the claims.
	Decode(token string) (map[string]any, error)
}
