package memory

import (
	"context"

	"userauth/internal/domain/entity"
	"userauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a repository.UserRepository over the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := checkContext(ctx, "failed to create user"); err != nil {
		return err
	}

	repo.store.Lock()
	defer repo.store.Unlock()

	if _, taken := repo.store.users[user.Email]; taken {
		return repository.ErrEmailTaken
	}

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}

	stored := cloneUser(user)
	repo.store.users[stored.Email] = stored
	repo.store.usersByID[stored.ID.String()] = stored

	return nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := checkContext(ctx, "failed to find user by email"); err != nil {
		return nil, err
	}

	repo.store.RLock()
	defer repo.store.RUnlock()

	user, ok := repo.store.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}
