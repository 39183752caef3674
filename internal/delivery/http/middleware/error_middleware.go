package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/delivery/http/response"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := domainerrors.AsAppError(err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("error_code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("route", c.Path()),
				slog.String("method", c.Request().Method),
			)
		}
		m.write(c, response.AppError(c, appErr))

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		m.write(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	// Default to internal error, log error and return generic error
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("route", c.Path()),
		slog.String("method", c.Request().Method),
	)

	m.write(c, response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()))
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
