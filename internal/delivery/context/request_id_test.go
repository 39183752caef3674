package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"userauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID_EchoAndStdContext(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAuthUser(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAuthUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	SetAuthUser(c, user)

	got, ok := GetAuthUser(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}
