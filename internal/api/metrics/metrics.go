// Package metrics defines and registers all custom Prometheus metrics for the
// CareNet API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carenet"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role chosen at sign-up ("CARE_SEEKER", "CAREGIVER", "ADMIN")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failures are never broken down further
//     to avoid encoding user-enumeration hints in metrics)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed to clients.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs issued at registration and login.",
	},
)

// TokenVerificationsTotal counts bearer-token verification outcomes at the
// request boundary.
// Label:
//   - result: "ok", "expired", "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Feedback metrics ──────────────────────────────────────────────────────────

// FeedbackSubmittedTotal counts accepted feedback submissions.
var FeedbackSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_submitted_total",
		Help:      "Total number of feedback submissions accepted.",
	},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// DirectoryCacheTotal counts cache decisions for the public caregiver
// directory.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from MongoDB)
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of caregiver directory cache lookups, by result.",
	},
	[]string{"result"},
)
