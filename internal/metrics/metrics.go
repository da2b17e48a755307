// Package metrics defines and registers the custom Prometheus metrics of the
// post board server. Metrics are registered with the default registry on
// package initialisation and exposed by [Handler].
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "post_board"

// Auth outcomes recorded by AuthAttemptsTotal.
const (
	OutcomeSuccess           = "success"
	OutcomeUserNotFound      = "user_not_found"
	OutcomeIncorrectPassword = "incorrect_password"
	OutcomeInvalidToken      = "invalid_token"
	OutcomeConflict          = "conflict"
	OutcomeInvalidData       = "invalid_data"
	OutcomeError             = "error"
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served HTTP requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/create_post"), "unmatched" otherwise
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests from routing to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register, login and token resolution attempts.
// Labels:
//   - operation: "register", "login" or "resolve"
//   - outcome: one of the Outcome* constants
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// UsersCreatedTotal counts successful registrations.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of registered users.",
	},
)

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of created posts.",
	},
)

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
