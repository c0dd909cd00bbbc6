// Package metrics defines and registers all custom Prometheus metrics for the
// storefront system. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init and are exposed through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// CartMutationsTotal counts successful cart mutations.
// Label:
//   - op: "add" or "remove"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of successful cart mutations, by operation.",
	},
	[]string{"op"},
)

// ProductsCreatedTotal counts products added through the admin panel.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products added to the catalog.",
	},
)

// ProductsDeletedTotal counts products removed through the admin panel.
var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products removed from the catalog.",
	},
)

// PersistenceErrorsTotal counts failed record writes. Writes are non-fatal
// (in-memory state stays authoritative), so this counter is the only place
// silent persistence degradation becomes visible.
// Label:
//   - record: "products" or "cart"
var PersistenceErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_errors_total",
		Help:      "Total number of failed state record writes, by record.",
	},
	[]string{"record"},
)

// StateLoadsTotal counts record loads at startup.
// Labels:
//   - record: "products" or "cart"
//   - result: "ok", "seeded", "empty" or "fallback" (unreadable record)
var StateLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "state_loads_total",
		Help:      "Total number of state record loads, by record and result.",
	},
	[]string{"record", "result"},
)

// NotificationsDroppedTotal counts notifications discarded because the
// dispatch queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped due to a full queue.",
	},
)
