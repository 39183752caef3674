package entity

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque bearer credential issued at login.
type Token struct {
	ID        uuid.UUID  // Assigned by the token store at creation.
	Value     string     // High-entropy bearer value. Only the holder and the issuing response see it in clear.
	UserID    uuid.UUID  // Owner reference; read-only after creation.
	User      *User      // Owner, populated by lookups that resolve it.
	ExpiresAt time.Time  // Absolute expiry instant, fixed at creation.
	Revoked   bool       // Monotonic: once true it is never reset.
	RevokedAt *time.Time // When logout revoked the token.
	CreatedAt time.Time
}

// IsValidAt reports whether the token authenticates its owner at now.
// Expiry is exclusive: a token is no longer valid at ExpiresAt.
func (t *Token) IsValidAt(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
