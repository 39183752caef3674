package middleware

import (
	"strings"

	deliverycontext "userauth/internal/delivery/context"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token on protected routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the Authorization header and stores the owner on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		value, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		user, err := m.authUC.ValidateToken(c.Request().Context(), value)
		if err != nil {
			return err
		}

		deliverycontext.SetAuthUser(c, user)

		return next(c)
	}
}

// BearerToken extracts the credential from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	value := strings.TrimSpace(header[len(bearerPrefix):])

	return value, value != ""
}
