// Package metrics holds the prometheus collectors of the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by operation and status code",
		},
		[]string{"operation", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// Upstream services (weather, flights, destination lookups)
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Outbound requests to third-party services by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Outbound request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service"},
	)
)

// ReconciledChildrenTotal counts child rows written while converging a
// parent's collection (parent: budget|itinerary, action: create|update|delete).
var ReconciledChildrenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reconciled_children_total",
		Help: "Child records created, updated or deleted by collection reconciliation",
	},
	[]string{"parent", "action"},
)

// ObserveReconcile records the size of an applied plan.
func ObserveReconcile(parent string, created, updated, deleted int) {
	ReconciledChildrenTotal.WithLabelValues(parent, "create").Add(float64(created))
	ReconciledChildrenTotal.WithLabelValues(parent, "update").Add(float64(updated))
	ReconciledChildrenTotal.WithLabelValues(parent, "delete").Add(float64(deleted))
}
