// Package metrics exposes the service's prometheus instrumentation.
//
// Rejected transitions are deliberately invisible to clients (duplicate
// operator commands are absorbed as silent no-ops), so the counters here
// are the only place that behavior can be observed and asserted.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reason labels for rejected transitions.
const (
	ReasonUnknownOrder   = "unknown_order"
	ReasonGuardViolation = "guard_violation"
)

// Outcome labels for push deliveries.
const (
	OutcomeDelivered = "delivered"
	OutcomeGone      = "gone"
	OutcomeFailed    = "failed"
)

// Metrics holds all service counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// OrdersSubmitted counts accepted order submissions.
	OrdersSubmitted prometheus.Counter

	// TransitionsApplied counts successful stage transitions by target stage.
	TransitionsApplied *prometheus.CounterVec

	// TransitionsRejected counts silently absorbed transition commands by reason.
	TransitionsRejected *prometheus.CounterVec

	// PushDeliveries counts push dispatch results by outcome.
	PushDeliveries *prometheus.CounterVec
}

// New creates a Metrics instance with all counters registered on a
// fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		OrdersSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "eatery",
			Name:      "orders_submitted_total",
			Help:      "Number of accepted order submissions.",
		}),
		TransitionsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eatery",
			Name:      "transitions_applied_total",
			Help:      "Number of successful order stage transitions.",
		}, []string{"stage"}),
		TransitionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eatery",
			Name:      "transitions_rejected_total",
			Help:      "Number of transition commands absorbed as silent no-ops.",
		}, []string{"reason"}),
		PushDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eatery",
			Name:      "push_deliveries_total",
			Help:      "Number of push dispatches by outcome.",
		}, []string{"outcome"}),
	}
}

// Handler returns an HTTP handler serving the registry in the
// prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
