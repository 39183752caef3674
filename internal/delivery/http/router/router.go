// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userauth/config"
	"userauth/internal/delivery/http/middleware"
	"userauth/internal/delivery/http/router/handler"
	"userauth/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	userGroup := e.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.SignUp)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/logout", r.userHandler.Logout)
		userGroup.POST("/validate/:token", r.userHandler.Validate)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}
}
