// Package metrics exposes prometheus collectors for auth operations and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "userauth/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "userauth"

// Auth operation names used as the "operation" label.
const (
	OpSignUp   = "signup"
	OpLogin    = "login"
	OpLogout   = "logout"
	OpValidate = "validate"
)

// Outcome label values.
const (
	OutcomeSuccess            = "success"
	OutcomeUnknownEmail       = "unknown_email"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeDuplicateEmail     = "duplicate_email"
	OutcomeInvalidToken       = "invalid_token"
	OutcomeTokenNotFound      = "token_not_found"
	OutcomeValidationFailed   = "validation_failed"
	OutcomeStoreUnavailable   = "store_unavailable"
	OutcomeError              = "error"
)

// Metrics owns a dedicated registry so tests and embedders never collide
// with the global default registerer.
type Metrics struct {
	registry *prometheus.Registry

	authOperations  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the service collectors plus Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "operations_total",
				Help:      "Count of auth operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Histogram of latencies for HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		m.authOperations,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveAuth counts one auth operation, classifying err into an outcome.
func (m *Metrics) ObserveAuth(operation string, err error) {
	if m == nil {
		return
	}
	m.authOperations.WithLabelValues(operation, Outcome(err)).Inc()
}

// ObserveRequest records request latency. path must be the route template,
// never the raw URL, so bearer values in paths stay out of label sets.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Outcome maps an auth error to its metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return OutcomeUnknownEmail
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, domainerrors.ErrDuplicateEmail):
		return OutcomeDuplicateEmail
	case errors.Is(err, domainerrors.ErrInvalidToken):
		return OutcomeInvalidToken
	case errors.Is(err, domainerrors.ErrTokenNotFound):
		return OutcomeTokenNotFound
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return OutcomeValidationFailed
	case errors.Is(err, domainerrors.ErrStoreUnavailable):
		return OutcomeStoreUnavailable
	default:
		return OutcomeError
	}
}
