// Package metrics defines and registers all custom Prometheus metrics for the
// corporate banking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at init; the router
// exposes them on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "banking"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts accounts created by administrators.
// Label:
//   - role: "ADMIN", "RM", or "ANALYST"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered, by role.",
	},
	[]string{"role"},
)

// ClientsCreatedTotal counts corporate clients onboarded by RMs.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of corporate clients onboarded.",
	},
)

// CreditRequestsCreatedTotal counts credit requests submitted by RMs.
var CreditRequestsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credit_requests_created_total",
		Help:      "Total number of credit requests submitted.",
	},
)

// CreditReviewsTotal counts analyst review decisions.
// Label:
//   - status: the resulting request status ("Pending", "Approved", "Rejected")
var CreditReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credit_reviews_total",
		Help:      "Total number of analyst review decisions, by resulting status.",
	},
	[]string{"status"},
)
