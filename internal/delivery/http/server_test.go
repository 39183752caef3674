package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"userauth/config"
	httpmiddleware "userauth/internal/delivery/http/middleware"
	"userauth/internal/delivery/http/router"
	"userauth/internal/delivery/http/router/handler"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/infra/auth"
	"userauth/internal/infra/metrics"
	"userauth/internal/infra/persistence/memory"
	"userauth/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenLength:       auth.DefaultTokenLength,
			TokenTTL:          30 * 24 * time.Hour,
			PasswordMinLength: 1,
			PasswordMaxLength: 72,
		},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"

	return cfg
}

func newTestEcho(t *testing.T, cfg *config.Config) (*echo.Echo, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	m := metrics.New()

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:       memory.NewUserRepository(store),
		TokenRepo:      memory.NewTokenRepository(store),
		Hasher:         auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenGenerator: auth.NewTokenGeneratorWithLength(auth.DefaultTokenLength),
		Clock:          auth.NewSystemClock(),
		Config:         cfg,
		Logger:         logger,
	})

	routerParams := router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AuthUsecase: authUC, Metrics: m, Config: cfg}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(authUC),
		Metrics:        m,
		Config:         cfg,
	}

	return NewEcho(cfg, logger, m, routerParams), m
}

func do(t *testing.T, e *echo.Echo, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func signUpAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	rec, _ := do(t, e, http.MethodPost, "/users/signup", `{"name":"Alice","email":"`+email+`","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, e, http.MethodPost, "/users/login", `{"email":"`+email+`","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var token handler.TokenView
	require.NoError(t, json.Unmarshal(env.Data, &token))

	return token.Value
}

func TestServer_SignUpResponseOmitsHash(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	rec, env := do(t, e, http.MethodPost, "/users/signup", `{"name":"Alice","email":"alice@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var user handler.UserView
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotContains(t, rec.Body.String(), "$2a$")
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestServer_SignUpErrors(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	rec, env := do(t, e, http.MethodPost, "/users/signup", `{"name":"","email":"bad","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)

	rec, _ = do(t, e, http.MethodPost, "/users/signup", `{"name":"A","email":"dup@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, e, http.MethodPost, "/users/signup", `{"name":"B","email":"dup@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_EMAIL", env.Error.Code)

	rec, _ = do(t, e, http.MethodPost, "/users/signup", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SignUpOverlongNameIsValidationError(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	body := `{"name":"` + strings.Repeat("n", 101) + `","email":"long@example.com","password":"pw"}`
	rec, env := do(t, e, http.MethodPost, "/users/signup", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
	assert.Contains(t, env.Error.Details, "name must be at most 100 characters")
}

func TestServer_LoginFailuresAreIndistinguishable(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())
	signUpAndLogin(t, e, "bob@example.com")

	unknownRec, _ := do(t, e, http.MethodPost, "/users/login", `{"email":"nobody@example.com","password":"pw"}`)
	wrongRec, _ := do(t, e, http.MethodPost, "/users/login", `{"email":"bob@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownRec.Code)
	assert.Equal(t, unknownRec.Code, wrongRec.Code)
	assert.JSONEq(t, unknownRec.Body.String(), wrongRec.Body.String())
}

func TestServer_ValidateLogoutLifecycle(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())
	value := signUpAndLogin(t, e, "carol@example.com")
	assert.Len(t, value, auth.DefaultTokenLength)

	rec, env := do(t, e, http.MethodPost, "/users/validate/"+value, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var user handler.UserView
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "carol@example.com", user.Email)

	rec, _ = do(t, e, http.MethodPost, "/users/logout", `{"token":"`+value+`"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = do(t, e, http.MethodPost, "/users/validate/"+value, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)

	rec, env = do(t, e, http.MethodPost, "/users/logout", `{"token":"`+value+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOKEN_NOT_FOUND", env.Error.Code)

	rec, _ = do(t, e, http.MethodPost, "/users/logout", `{"token":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_IdempotentLogout(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.IdempotentLogout = true
	e, _ := newTestEcho(t, cfg)

	rec, _ := do(t, e, http.MethodPost, "/users/logout", `{"token":"never-issued"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_MeRequiresBearer(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())
	value := signUpAndLogin(t, e, "dave@example.com")

	rec, env := do(t, e, http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, _ = do(t, e, http.MethodGet, "/users/me", "", echo.HeaderAuthorization, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/users/me", "", echo.HeaderAuthorization, "Bearer "+value)
	require.Equal(t, http.StatusOK, rec.Code)
	var user handler.UserView
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "dave@example.com", user.Email)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	rec, env := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	value := signUpAndLogin(t, e, "erin@example.com")
	do(t, e, http.MethodPost, "/users/validate/"+value, "")

	rec, _ = do(t, e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `userauth_auth_operations_total{operation="login",outcome="success"} 1`)
	assert.Contains(t, body, `path="/users/validate/:token"`)
	assert.NotContains(t, body, value)
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.Metrics.Enabled = false
	e, _ := newTestEcho(t, cfg)

	rec, _ := do(t, e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	large := `{"name":"` + strings.Repeat("a", 200*1024) + `","email":"big@example.com","password":"pw"}`
	rec, _ := do(t, e, http.MethodPost, "/users/signup", large)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
