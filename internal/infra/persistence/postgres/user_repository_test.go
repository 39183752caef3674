package postgres

import (
	"context"
	"testing"

	"userauth/internal/domain/entity"
	"userauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &entity.User{
		Name:          "Alice",
		Email:         "alice@example.com",
		PasswordHash:  "$2a$04$hash",
		EmailVerified: true,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, "$2a$04$hash", found.PasswordHash)
	assert.True(t, found.EmailVerified)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "A", Email: "dup@example.com", PasswordHash: "h"}))

	err := repo.Create(ctx, &entity.User{Name: "B", Email: "dup@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}
