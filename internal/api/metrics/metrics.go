// Package metrics defines and registers all custom Prometheus metrics for
// the identity API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// ── OAuth2 client metrics ─────────────────────────────────────────────────────

// ClientEditsTotal counts successful client configuration edits.
// Label:
//   - require_pkce: "true" or "false", the PKCE flag after the edit
var ClientEditsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_edits_total",
		Help:      "Total number of OAuth2 client configuration edits applied.",
	},
	[]string{"require_pkce"},
)

// ClientEditsRejectedTotal counts edit attempts that failed validation or
// authorization.
// Label:
//   - reason: "not_found", "forbidden", "empty_grant_types", "invalid_input"
var ClientEditsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_edits_rejected_total",
		Help:      "Total number of OAuth2 client edits rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created self-registered users.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users created through self-registration.",
	},
)

// RegistrationsRejectedTotal counts registrations that did not create a user.
// Label:
//   - reason: "disabled", "identity_exists", "invalid_input"
var RegistrationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_rejected_total",
		Help:      "Total number of self-registrations rejected, by reason.",
	},
	[]string{"reason"},
)
