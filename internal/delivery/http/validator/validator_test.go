package validator

import (
	"strings"
	"testing"

	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_SignUpInput(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.SignUpInput{Name: "A", Email: "a@example.com", Password: "pw"}))

	err := v.Validate(&usecase.SignUpInput{Name: "", Email: "not-an-email", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
}

func TestCustomValidator_LogoutInput(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.LogoutInput{})
	require.Error(t, err)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "token is required", appErr.Details())
}

func TestCustomValidator_SignUpFieldWidths(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.SignUpInput{Name: strings.Repeat("n", 101), Email: "a@example.com", Password: "pw"})
	require.Error(t, err)

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "name must be at most 100 characters", appErr.Details())

	err = v.Validate(&usecase.SignUpInput{Name: "A", Email: strings.Repeat("e", 244) + "@example.com", Password: "pw"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
