package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain.TokenRepository interface.
// Token values are looked up by their SHA-256 digest so a leaked table does
// not leak usable credentials.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new token issued at login.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	if token.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate token id")
		}
		token.ID = id
	}

	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTokenValueTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindActiveByValue resolves a token and its owner in one statement whose
// predicate carries the full validity check.
func (repo *tokenRepository) FindActiveByValue(ctx context.Context, value string, now time.Time) (*entity.Token, error) {
	var tokenM model.TokenModel

	err := repo.db.WithContext(ctx).
		Joins("User").
		Where("tokens.value_hash = ? AND tokens.revoked = ? AND tokens.expires_at > ?", hashTokenValue(value), false, now).
		Take(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find token")
	}
	if tokenM.User == nil {
		return nil, repository.ErrTokenNotFound
	}

	token := toTokenDomain(&tokenM)
	token.Value = value

	return token, nil
}

// Revoke flips the revoked flag with a conditional update, so concurrent
// revocations of one value see exactly one success.
func (repo *tokenRepository) Revoke(ctx context.Context, value string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("value_hash = ? AND revoked = ?", hashTokenValue(value), false).
		Updates(map[string]any{
			"revoked":    true,
			"revoked_at": at,
		})
	if result.Error != nil {
		return domainerrors.NewStoreUnavailableError(result.Error, "failed to revoke token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

func hashTokenValue(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
// The clear value is not stored and must be filled in by the caller.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:        data.ID,
		UserID:    data.UserID,
		User:      toUserDomain(data.User),
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		RevokedAt: data.RevokedAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromTokenDomain converts a domain Token entity to a GORM TokenModel.
func fromTokenDomain(data *entity.Token) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        data.ID,
		ValueHash: hashTokenValue(data.Value),
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		RevokedAt: data.RevokedAt,
		CreatedAt: data.CreatedAt,
	}
}
