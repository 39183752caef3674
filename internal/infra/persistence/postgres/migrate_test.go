package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	content, err := fs.ReadFile(migrations, migrationsDir+"/"+entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "idx_tokens_value_hash")
	assert.Contains(t, string(content), "idx_users_email")
	assert.Contains(t, string(content), "CREATE INDEX IF NOT EXISTS idx_tokens_validity ON tokens (value_hash, revoked, expires_at);")
	assert.Contains(t, string(content), "DROP INDEX IF EXISTS idx_tokens_validity;")
}

func TestMigrate_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, Migrate(context.Background(), nil))
	assert.Equal(t, migrationsDir, gotDir)
}

func TestMigrate_PropagatesFailure(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	gooseUp = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err := Migrate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
