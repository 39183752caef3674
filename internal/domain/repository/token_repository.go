package repository

import (
	"context"
	"time"

	"userauth/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrTokenNotFound is returned when no token satisfies the lookup or conditional update.
	ErrTokenNotFound = errors.New("token not found")
	// ErrTokenValueTaken is returned by Create when the value collides with an existing token.
	ErrTokenValueTaken = errors.New("token value already exists")
)

// TokenRepository defines persistence for bearer tokens.
// Tokens are soft-revoked, never deleted. Each method must be a single atomic
// operation against the store so that revocation and validation on the same
// value linearize.
type TokenRepository interface {
	// Create persists a new token and fills in its ID and creation time.
	Create(ctx context.Context, token *entity.Token) error

	// FindActiveByValue returns the token with the given value only if it is not
	// revoked and expires after now, checked in one conjunctive lookup. The owner
	// is resolved into token.User.
	FindActiveByValue(ctx context.Context, value string, now time.Time) (*entity.Token, error)

	// Revoke flips revoked to true for a not-yet-revoked token with the given value.
	// It returns ErrTokenNotFound when no such token exists.
	Revoke(ctx context.Context, value string, at time.Time) error
}
