// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userauth/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LogoutInput carries the bearer value to revoke.
type LogoutInput struct {
	Token string `json:"token" validate:"required"`
}

// AuthUsecase defines the authentication and token-lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp registers a user. Fails with ErrDuplicateEmail when the email is taken.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)

	// Login verifies credentials and issues a fresh token.
	// Fails with ErrUserNotFound or ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*entity.Token, error)

	// Logout revokes the token. Fails with ErrTokenNotFound when there is nothing to revoke.
	Logout(ctx context.Context, input *LogoutInput) error

	// ValidateToken resolves a bearer value to its owner. Fails with ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenValue string) (*entity.User, error)
}
