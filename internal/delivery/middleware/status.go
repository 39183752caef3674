package middleware

import (
	"net/http"

	domainerrors "userauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatusOf predicts the HTTP status the error handler will write for err.
func StatusOf(err error) int {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
