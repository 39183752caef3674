package errors

import (
	"context"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesDerivedErrors(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("name is required")
	moreDetailed := detailed.WithDetails("email is required")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.ErrorIs(t, moreDetailed, ErrValidationFailed)
	assert.Equal(t, "email is required", moreDetailed.Details())
	assert.NotErrorIs(t, detailed, ErrInvalidToken)
}

func TestBaseError_SameRenderingDistinctIdentity(t *testing.T) {
	assert.Equal(t, ErrInvalidCredentials.ErrorCode(), ErrUserNotFound.ErrorCode())
	assert.Equal(t, ErrInvalidCredentials.Message(), ErrUserNotFound.Message())
	assert.Equal(t, ErrInvalidCredentials.HTTPCode(), ErrUserNotFound.HTTPCode())

	assert.NotErrorIs(t, ErrUserNotFound, ErrInvalidCredentials)
	assert.NotErrorIs(t, ErrInvalidCredentials, ErrUserNotFound)
}

func TestAsAppError(t *testing.T) {
	wrapped := pkgerrors.Wrap(ErrDuplicateEmail, "sign up")

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_EMAIL", appErr.ErrorCode())

	_, ok = AsAppError(pkgerrors.New("plain"))
	assert.False(t, ok)

	_, ok = AsAppError(nil)
	assert.False(t, ok)
}

func TestStoreUnavailableError(t *testing.T) {
	err := NewStoreUnavailableError(context.DeadlineExceeded, "failed to find token")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", err.ErrorCode())
	assert.Empty(t, err.Details())
	assert.Contains(t, err.Error(), "failed to find token")

	wrapped := pkgerrors.Wrap(err, "validate")
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())

	assert.Contains(t, NewStoreUnavailableError(nil, "no cause").Error(), "no cause")
}
