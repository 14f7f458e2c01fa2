// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns a to-do list.
// Username and Email are each unique across all users.
type User struct {
	ID           uint      // Engine-assigned primary key.
	Username     string    // Unique login handle.
	Email        string    // Unique address, also the subject of issued tokens.
	PasswordHash string    // Hash produced by the PasswordHasher, never the plaintext.
	CreatedAt    time.Time // Set once on insert.
	UpdatedAt    time.Time // Refreshed on every mutation.
}

// CanModify reports whether the user may mutate the account with targetID.
// Accounts are self-service only.
func (u *User) CanModify(targetID uint) bool {
	return u != nil && u.ID == targetID
}
