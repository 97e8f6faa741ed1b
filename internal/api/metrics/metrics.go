// Package metrics defines and registers all custom Prometheus metrics
// for the store API. It is the single source of truth for metric names,
// labels, and help strings. Counters are registered with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store"

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role granted ("admin" for the first user, "user" otherwise)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by granted role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected by the access gate.
// Label:
//   - reason: "missing_header", "bad_header", "bad_token", "not_admin", "role_check_failed"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ProductsCreatedTotal counts catalog entries created by admins.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// OrdersPlacedTotal counts newly placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderReplaysTotal counts order placements answered from the
// idempotency guard instead of a fresh insert.
var OrderReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_replays_total",
		Help:      "Total number of idempotent order placement replays.",
	},
)
