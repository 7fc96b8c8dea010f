// Package metrics defines and registers all custom Prometheus metrics for
// the booking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// SubmissionsTotal counts booking submissions by outcome.
// Label:
//   - result: "created", "replayed", "rejected", or "error"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of booking submissions, by result.",
	},
	[]string{"result"},
)

// ConfirmationsTotal counts confirmation email deliveries.
// Label:
//   - result: "sent" or "failed"
var ConfirmationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmations_total",
		Help:      "Total number of confirmation email deliveries, by result.",
	},
	[]string{"result"},
)

// ArchivedTotal counts archive operations that completed successfully.
var ArchivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "archived_total",
		Help:      "Total number of bookings archived.",
	},
)

// AuthFailuresTotal counts rejected token verifications.
// Label:
//   - reason: "missing", "expired", or "invalid"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)
