// Package service holds the ports for capabilities the use cases need but do
// not implement: password hashing, token signing and event publishing.
package service

// PasswordHasher turns plaintext passwords into stored hashes and back-checks them.
type PasswordHasher interface {
	// Hash returns a salted hash; two calls with the same input differ.
	Hash(password string) (string, error)

	// Check reports whether password produces hash. Malformed hashes never match.
	Check(password, hash string) bool
}
