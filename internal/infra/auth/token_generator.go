package auth

import (
	"github.com/hashicorp/go-secure-stdlib/base62"
	"github.com/pkg/errors"

	"userauth/config"
	"userauth/internal/domain/service"
)

// DefaultTokenLength is the number of characters in an issued token value.
const DefaultTokenLength = 128

// base62Generator draws token values from [A-Za-z0-9] using crypto/rand.
type base62Generator struct {
	length int
}

// NewTokenGenerator builds a generator sized by auth config.
func NewTokenGenerator(cfg *config.Config) service.TokenGenerator {
	length := DefaultTokenLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TokenLength > 0 {
		length = cfg.Auth.TokenLength
	}

	return NewTokenGeneratorWithLength(length)
}

func NewTokenGeneratorWithLength(length int) service.TokenGenerator {
	if length <= 0 {
		length = DefaultTokenLength
	}

	return &base62Generator{length: length}
}

func (g *base62Generator) Generate() (string, error) {
	value, err := base62.Random(g.length)
	if err != nil {
		return "", errors.Wrap(err, "generate token value")
	}

	return value, nil
}
