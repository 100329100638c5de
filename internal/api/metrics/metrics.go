// Package metrics defines and registers all custom Prometheus metrics for the
// MediCall telehealth API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "medicall"

// ── Sign-in metrics ───────────────────────────────────────────────────────────

// SignInAttemptsTotal counts sign-in attempts.
// Labels:
//   - user_type: "Patient", "Doctor", "Hospital" or "Insurance"
//   - outcome: "success", "invalid_credentials", "auth_failed",
//     "store_unavailable" or "validation"
var SignInAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_in_attempts_total",
		Help:      "Total number of sign-in attempts, by user type and outcome.",
	},
	[]string{"user_type", "outcome"},
)

// SignInDuration measures the full sign-in path including the record store lookup.
var SignInDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sign_in_duration_seconds",
		Help:      "Duration of sign-in handling from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionRestoresTotal counts mirror restore attempts.
// Label:
//   - outcome: "ok" or "none" (no entry, or a discarded corrupt snapshot)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SignOutsTotal counts explicit sign-outs.
var SignOutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_outs_total",
		Help:      "Total number of explicit sign-outs.",
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardRendersTotal counts dashboard renders.
// Labels:
//   - view: "patient", "doctor", "hospital", "insurance" or "none"
//   - source: "record" (session payload) or "fallback" (bundled dataset)
var DashboardRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_renders_total",
		Help:      "Total number of dashboard renders, by view and data source.",
	},
	[]string{"view", "source"},
)
