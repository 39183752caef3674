package service

import (
	"context"
	"time"
)

// AuthEventType names an auditable authentication outcome.
type AuthEventType string

const (
	EventUserSignedUp     AuthEventType = "user.signed_up"
	EventLoginSucceeded   AuthEventType = "user.login_succeeded"
	EventLoginFailed      AuthEventType = "user.login_failed"
	EventTokenRevoked     AuthEventType = "token.revoked"
	LoginFailUnknownEmail               = "unknown_email"
	LoginFailWrongPassword              = "wrong_password"
)

// AuthEvent is an audit record of an authentication outcome.
// It never carries passwords or token values.
type AuthEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       AuthEventType `json:"type"`
	UserID     string        `json:"user_id,omitempty"`
	TokenID    string        `json:"token_id,omitempty"`
	Email      string        `json:"email,omitempty"`
	Reason     string        `json:"reason,omitempty"` // Internal failure cause; not shown to API clients
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an audit event
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
