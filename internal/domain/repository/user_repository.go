// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userauth/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned by Create when the unique email index rejects the row.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// Implementations must report infrastructure failures as domainerrors.ErrStoreUnavailable.
type UserRepository interface {
	// Create persists a new user and fills in its ID and timestamps.
	// Email uniqueness is enforced here, not by callers: a duplicate must yield ErrEmailTaken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user, including the password hash, by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
