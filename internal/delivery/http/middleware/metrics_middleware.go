package middleware

import (
	"time"

	deliverymiddleware "userauth/internal/delivery/middleware"
	"userauth/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request latency by route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle is the echo middleware function.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = deliverymiddleware.StatusOf(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.metrics.ObserveRequest(c.Request().Method, path, status, time.Since(start))

		return err
	}
}
