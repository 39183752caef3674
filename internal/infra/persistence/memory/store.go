// Package memory keeps users and tokens in process memory. It backs local runs
// and tests; state is lost on restart.
package memory

import (
	"context"
	"sync"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
)

// Store holds the shared tables for the user and token repositories.
// One lock guards both so that a token lookup and its owner resolution,
// and a revocation, are each atomic.
type Store struct {
	users     map[string]*entity.User // keyed by email
	usersByID map[string]*entity.User
	tokens    map[string]*entity.Token // keyed by bearer value

	sync.RWMutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*entity.User),
		usersByID: make(map[string]*entity.User),
		tokens:    make(map[string]*entity.Token),
	}
}

// checkContext mirrors a database driver giving up on a cancelled request.
func checkContext(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreUnavailableError(err, op)
	}

	return nil
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u

	return &cp
}

func cloneToken(t *entity.Token) *entity.Token {
	if t == nil {
		return nil
	}
	cp := *t
	if t.RevokedAt != nil {
		at := *t.RevokedAt
		cp.RevokedAt = &at
	}
	cp.User = nil

	return &cp
}
