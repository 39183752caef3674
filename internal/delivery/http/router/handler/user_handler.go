// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strings"
	"time"

	"userauth/config"
	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/delivery/http/response"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/errors"
	"userauth/internal/infra/metrics"
	"userauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserView is the public projection of a user. It never carries the password hash.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenView is returned by login.
type TokenView struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserHandlerParams holds dependencies for user-related handlers, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUsecase usecase.AuthUsecase
	Metrics     *metrics.Metrics `optional:"true"`
	Config      *config.Config
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc               usecase.AuthUsecase
	metrics          *metrics.Metrics
	idempotentLogout bool
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	h := &UserHandler{
		uc:      params.AuthUsecase,
		metrics: params.Metrics,
	}
	if params.Config != nil && params.Config.Auth != nil {
		h.idempotentLogout = params.Config.Auth.IdempotentLogout
	}

	return h
}

// SignUp handles the user registration request.
func (h *UserHandler) SignUp(c echo.Context) error {
	input := new(usecase.SignUpInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		h.metrics.ObserveAuth(metrics.OpSignUp, err)

		return err
	}

	user, err := h.uc.SignUp(c.Request().Context(), input)
	h.metrics.ObserveAuth(metrics.OpSignUp, err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		h.metrics.ObserveAuth(metrics.OpLogin, err)

		return err
	}

	token, err := h.uc.Login(c.Request().Context(), input)
	h.metrics.ObserveAuth(metrics.OpLogin, err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenView{
		Value:     token.Value,
		ExpiresAt: token.ExpiresAt,
	}, "Login successful")
}

// Logout handles the token revocation request.
func (h *UserHandler) Logout(c echo.Context) error {
	input := new(usecase.LogoutInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Invalid logout input")
	}
	if err := c.Validate(input); err != nil {
		h.metrics.ObserveAuth(metrics.OpLogout, err)

		return err
	}

	err := h.uc.Logout(c.Request().Context(), input)
	h.metrics.ObserveAuth(metrics.OpLogout, err)
	if err != nil {
		if h.idempotentLogout && errors.Is(err, domainerrors.ErrTokenNotFound) {
			return c.NoContent(http.StatusNoContent)
		}

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Validate resolves the token in the path to its owner.
func (h *UserHandler) Validate(c echo.Context) error {
	user, err := h.uc.ValidateToken(c.Request().Context(), strings.TrimSpace(c.Param("token")))
	h.metrics.ObserveAuth(metrics.OpValidate, err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Token is valid")
}

// Me returns the user resolved by the bearer authentication middleware.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetAuthUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile retrieved successfully")
}

func toUserView(user *entity.User) UserView {
	return UserView{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
