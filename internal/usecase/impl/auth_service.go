// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"userauth/config"
	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/domain/service"
	"userauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTokenTTL = 30 * 24 * time.Hour

	// Column widths of users.name and users.email, counted in characters.
	maxNameLength  = 100
	maxEmailLength = 255

	// dummyPassword is hashed once and checked against on unknown-email logins
	// so both failure paths pay the same bcrypt cost.
	dummyPassword = "userauth-timing-equalizer"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    service.PasswordHasher
	generator service.TokenGenerator
	clock     service.Clock
	publisher service.EventPublisher
	logger    *slog.Logger

	tokenTTL          time.Duration
	storeTimeout      time.Duration
	passwordMinLength int
	passwordMaxLength int

	dummyHashMu sync.Mutex
	dummyHash   string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	TokenRepo      repository.TokenRepository
	Hasher         service.PasswordHasher
	TokenGenerator service.TokenGenerator
	Clock          service.Clock
	Publisher      service.EventPublisher `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:          params.UserRepo,
		tokenRepo:         params.TokenRepo,
		hasher:            params.Hasher,
		generator:         params.TokenGenerator,
		clock:             params.Clock,
		publisher:         params.Publisher,
		logger:            params.Logger,
		tokenTTL:          defaultTokenTTL,
		passwordMinLength: 1,
		passwordMaxLength: 72,
	}

	if params.Config != nil && params.Config.Auth != nil {
		auth := params.Config.Auth
		if auth.TokenTTL > 0 {
			srv.tokenTTL = auth.TokenTTL
		}
		if auth.StoreTimeout > 0 {
			srv.storeTimeout = auth.StoreTimeout
		}
		if auth.PasswordMinLength > 0 {
			srv.passwordMinLength = auth.PasswordMinLength
		}
		if auth.PasswordMaxLength > 0 {
			srv.passwordMaxLength = auth.PasswordMaxLength
		}
	}

	if srv.logger == nil {
		srv.logger = slog.Default()
	}

	srv.timingHash()

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new user with a hashed password.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("email must be at most %d characters", maxEmailLength))
	}
	if err := srv.checkPasswordLength(input.Password); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.clock.Now()
	user := &entity.User{
		Name:          name,
		Email:         email,
		PasswordHash:  hashed,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	storeCtx, cancel := srv.storeCtx(ctx)
	defer cancel()

	if err := srv.userRepo.Create(storeCtx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Info("Sign up rejected: email already registered", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrDuplicateEmail, "sign up")
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, storeError(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))
	srv.publish(ctx, &service.AuthEvent{
		Type:   service.EventUserSignedUp,
		UserID: user.ID.String(),
		Email:  email,
	})

	return user.Sanitized(), nil
}

// Login verifies credentials and issues a new token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Token, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.findUser(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, srv.timingHash())
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", service.LoginFailUnknownEmail))
			srv.publish(ctx, &service.AuthEvent{
				Type:   service.EventLoginFailed,
				Email:  email,
				Reason: service.LoginFailUnknownEmail,
			})

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}
		srv.log(ctx).Error("Failed to load user for login", slog.String("email", email), slog.Any("error", err))

		return nil, storeError(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", service.LoginFailWrongPassword))
		srv.publish(ctx, &service.AuthEvent{
			Type:   service.EventLoginFailed,
			UserID: user.ID.String(),
			Email:  email,
			Reason: service.LoginFailWrongPassword,
		})

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()), slog.String("tokenID", token.ID.String()))
	srv.publish(ctx, &service.AuthEvent{
		Type:    service.EventLoginSucceeded,
		UserID:  user.ID.String(),
		TokenID: token.ID.String(),
		Email:   email,
	})

	return token, nil
}

func (srv *authService) findUser(ctx context.Context, email string) (*entity.User, error) {
	storeCtx, cancel := srv.storeCtx(ctx)
	defer cancel()

	return srv.userRepo.FindByEmail(storeCtx, email)
}

// issueToken creates and persists a fresh token for user. Value uniqueness
// rests on generator entropy, so a collision is reported, not retried.
func (srv *authService) issueToken(ctx context.Context, user *entity.User) (*entity.Token, error) {
	value, err := srv.generator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	now := srv.clock.Now()
	token := &entity.Token{
		Value:     value,
		UserID:    user.ID,
		User:      user.Sanitized(),
		ExpiresAt: now.Add(srv.tokenTTL),
		CreatedAt: now,
	}

	if err := srv.createToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrTokenValueTaken) {
			srv.log(ctx).Error("Generated token collided with an existing one", slog.String("userID", user.ID.String()))

			return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, "token value collision")
		}
		srv.log(ctx).Error("Failed to persist token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil, storeError(err, "failed to create token")
	}

	return token, nil
}

func (srv *authService) createToken(ctx context.Context, token *entity.Token) error {
	storeCtx, cancel := srv.storeCtx(ctx)
	defer cancel()

	return srv.tokenRepo.Create(storeCtx, token)
}

// Logout revokes the token. Expired tokens are still revocable.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil || strings.TrimSpace(input.Token) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	storeCtx, cancel := srv.storeCtx(ctx)
	defer cancel()

	if err := srv.tokenRepo.Revoke(storeCtx, input.Token, srv.clock.Now()); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Info("Logout found no active token")

			return errors.Wrap(domainerrors.ErrTokenNotFound, "logout")
		}
		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return storeError(err, "failed to revoke token")
	}

	srv.log(ctx).Info("Token revoked")
	srv.publish(ctx, &service.AuthEvent{Type: service.EventTokenRevoked})

	return nil
}

// ValidateToken resolves a bearer value to its owner when the token is
// neither revoked nor expired.
func (srv *authService) ValidateToken(ctx context.Context, tokenValue string) (*entity.User, error) {
	if strings.TrimSpace(tokenValue) == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "empty token")
	}

	storeCtx, cancel := srv.storeCtx(ctx)
	defer cancel()

	token, err := srv.tokenRepo.FindActiveByValue(storeCtx, tokenValue, srv.clock.Now())
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Debug("Token rejected")

			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "validate token")
		}
		srv.log(ctx).Error("Failed to look up token", slog.Any("error", err))

		return nil, storeError(err, "failed to find token")
	}

	return token.User.Sanitized(), nil
}

func (srv *authService) checkPasswordLength(password string) error {
	n := len(password)
	if n < srv.passwordMinLength || n > srv.passwordMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be between %d and %d bytes", srv.passwordMinLength, srv.passwordMaxLength),
		)
	}

	return nil
}

// storeCtx bounds a single store call by the configured store timeout.
func (srv *authService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.storeTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, srv.storeTimeout)
}

// timingHash returns the hash checked on unknown-email logins. It is built at
// construction and rebuilt on demand if that failed; a failed rebuild has
// still paid one bcrypt cost.
func (srv *authService) timingHash() string {
	srv.dummyHashMu.Lock()
	defer srv.dummyHashMu.Unlock()

	if srv.dummyHash != "" {
		return srv.dummyHash
	}

	hash, err := srv.hasher.Hash(dummyPassword)
	if err != nil {
		srv.logger.Warn("Failed to prepare timing hash", slog.Any("error", err))

		return ""
	}
	srv.dummyHash = hash

	return hash
}

// publish emits an audit event. Delivery failures are logged and never fail the request.
func (srv *authService) publish(ctx context.Context, event *service.AuthEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.clock.Now()

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event", slog.String("type", string(event.Type)), slog.Any("error", err))
	}
}

// storeError maps any failure surfaced by a repository, including a missed
// store deadline, to ErrStoreUnavailable.
func storeError(err error, details string) error {
	if errors.Is(err, domainerrors.ErrStoreUnavailable) {
		return err
	}

	return domainerrors.NewStoreUnavailableError(err, details)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
