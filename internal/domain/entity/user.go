// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account in the user directory.
// PasswordHash holds the one-way hash of the credential and must never leave the trust boundary.
type User struct {
	ID            uuid.UUID // Assigned by the user store at creation; immutable afterwards.
	Name          string    // Display name.
	Email         string    // Login identifier; unique across the directory.
	PasswordHash  string    `json:"-"` // Output of the password hasher, never the plaintext.
	EmailVerified bool      // Set at signup.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Sanitized returns a copy of the user without credential material.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	cp := *u
	cp.PasswordHash = ""

	return &cp
}
