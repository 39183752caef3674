package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func newRepos(t *testing.T) (repository.UserRepository, repository.TokenRepository, *entity.User) {
	t.Helper()

	store := NewStore()
	users := NewUserRepository(store)
	tokens := NewTokenRepository(store)

	user := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"}
	require.NoError(t, users.Create(context.Background(), user))

	return users, tokens, user
}

func TestUserRepository(t *testing.T) {
	users, _, user := newRepos(t)
	ctx := context.Background()

	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "h", found.PasswordHash)

	// returned users are copies
	found.Name = "Mallory"
	again, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)

	_, err = users.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = users.Create(ctx, &entity.User{Name: "Dup", Email: "alice@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestUserRepository_ConcurrentSignupSingleWinner(t *testing.T) {
	users := NewUserRepository(NewStore())

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := users.Create(context.Background(), &entity.User{Name: "n", Email: "race@example.com", PasswordHash: "h"})
			if err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestTokenRepository_Lifecycle(t *testing.T) {
	_, tokens, user := newRepos(t)
	ctx := context.Background()

	token := &entity.Token{Value: "v1", UserID: user.ID, ExpiresAt: baseTime.Add(time.Hour), CreatedAt: baseTime}
	require.NoError(t, tokens.Create(ctx, token))
	assert.NotEqual(t, uuid.Nil, token.ID)

	found, err := tokens.FindActiveByValue(ctx, "v1", baseTime)
	require.NoError(t, err)
	require.NotNil(t, found.User)
	assert.Equal(t, user.ID, found.User.ID)

	_, err = tokens.FindActiveByValue(ctx, "v1", baseTime.Add(time.Hour))
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	require.NoError(t, tokens.Revoke(ctx, "v1", baseTime))
	_, err = tokens.FindActiveByValue(ctx, "v1", baseTime)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	assert.ErrorIs(t, tokens.Revoke(ctx, "v1", baseTime), repository.ErrTokenNotFound)
	assert.ErrorIs(t, tokens.Revoke(ctx, "nope", baseTime), repository.ErrTokenNotFound)
}

func TestTokenRepository_CreateRejectsDuplicatesAndOrphans(t *testing.T) {
	_, tokens, user := newRepos(t)
	ctx := context.Background()

	require.NoError(t, tokens.Create(ctx, &entity.Token{Value: "same", UserID: user.ID, ExpiresAt: baseTime}))
	assert.ErrorIs(t, tokens.Create(ctx, &entity.Token{Value: "same", UserID: user.ID, ExpiresAt: baseTime}), repository.ErrTokenValueTaken)
	assert.ErrorIs(t, tokens.Create(ctx, &entity.Token{Value: "orphan", UserID: uuid.New(), ExpiresAt: baseTime}), repository.ErrUserNotFound)
}

func TestTokenRepository_CancelledContext(t *testing.T) {
	_, tokens, _ := newRepos(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tokens.FindActiveByValue(ctx, "v", baseTime)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
