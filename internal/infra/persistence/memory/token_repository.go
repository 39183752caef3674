package memory

import (
	"context"
	"time"

	"userauth/internal/domain/entity"
	"userauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type tokenRepository struct {
	store *Store
}

// NewTokenRepository returns a repository.TokenRepository over the store.
func NewTokenRepository(store *Store) repository.TokenRepository {
	return &tokenRepository{store: store}
}

func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	if err := checkContext(ctx, "failed to create token"); err != nil {
		return err
	}

	repo.store.Lock()
	defer repo.store.Unlock()

	if _, taken := repo.store.tokens[token.Value]; taken {
		return repository.ErrTokenValueTaken
	}
	if _, ok := repo.store.usersByID[token.UserID.String()]; !ok {
		return repository.ErrUserNotFound
	}

	if token.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate token id")
		}
		token.ID = id
	}

	repo.store.tokens[token.Value] = cloneToken(token)

	return nil
}

func (repo *tokenRepository) FindActiveByValue(ctx context.Context, value string, now time.Time) (*entity.Token, error) {
	if err := checkContext(ctx, "failed to find token"); err != nil {
		return nil, err
	}

	repo.store.RLock()
	defer repo.store.RUnlock()

	stored, ok := repo.store.tokens[value]
	if !ok || !stored.IsValidAt(now) {
		return nil, repository.ErrTokenNotFound
	}

	owner, ok := repo.store.usersByID[stored.UserID.String()]
	if !ok {
		return nil, repository.ErrTokenNotFound
	}

	token := cloneToken(stored)
	token.User = cloneUser(owner)

	return token, nil
}

func (repo *tokenRepository) Revoke(ctx context.Context, value string, at time.Time) error {
	if err := checkContext(ctx, "failed to revoke token"); err != nil {
		return err
	}

	repo.store.Lock()
	defer repo.store.Unlock()

	stored, ok := repo.store.tokens[value]
	if !ok || stored.Revoked {
		return repository.ErrTokenNotFound
	}

	revokedAt := at
	stored.Revoked = true
	stored.RevokedAt = &revokedAt

	return nil
}
