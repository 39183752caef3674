package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "userauth", cfg.Env.ServiceName)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 128, cfg.Auth.TokenLength)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 1, cfg.Auth.PasswordMinLength)
	assert.Equal(t, 72, cfg.Auth.PasswordMaxLength)
	assert.False(t, cfg.Auth.IdempotentLogout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Driver: StorageDriverMemory},
		Auth: &AuthConfig{
			TokenLength:       64,
			TokenTTL:          time.Hour,
			PasswordMinLength: 8,
			PasswordMaxLength: 500,
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 64, cfg.Auth.TokenLength)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	// bcrypt cannot use more than 72 bytes
	assert.Equal(t, 72, cfg.Auth.PasswordMaxLength)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
storage:
  driver: postgres
auth:
  tokenTTL: 720h
  idempotentLogout: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("AUTH_TOKENTTL", "2h")
	t.Setenv("AUTH_IDEMPOTENTLOGOUT", "true")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.IdempotentLogout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}

func TestValidate_PasswordBounds(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{PasswordMinLength: 80}}
	applyDefaults(cfg)

	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwordMinLength (80) exceeds auth.passwordMaxLength (72)")

	cfg.Auth.PasswordMinLength = 72
	assert.NoError(t, validate(cfg))
}

func TestNew_RejectsInvertedPasswordBounds(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
storage:
  driver: memory
auth:
  passwordMinLength: 80
  passwordMaxLength: 72
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Chdir(dir)

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwordMinLength")
}
