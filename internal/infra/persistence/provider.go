// Package persistence selects the repository implementations backing the service.
package persistence

import (
	"log/slog"

	"userauth/config"
	"userauth/internal/domain/repository"
	"userauth/internal/infra/persistence/memory"
	"userauth/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for building repositories.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories provided to the container.
type Repositories struct {
	fx.Out

	Users  repository.UserRepository
	Tokens repository.TokenRepository
}

// NewRepositories builds repositories for the configured storage driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; users and tokens are lost on restart")
		store := memory.NewStore()

		return Repositories{
			Users:  memory.NewUserRepository(store),
			Tokens: memory.NewTokenRepository(store),
		}, nil

	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:  postgres.NewUserRepository(db),
			Tokens: postgres.NewTokenRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}
