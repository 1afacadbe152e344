// Package metrics holds the Prometheus collectors of the seatgrid CLI and
// service. Library packages never touch these; the caller records
// observations around core invocations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label names and well-known values.
const (
	OutcomeLabel = "outcome"
	EngineLabel  = "engine"
	HandlerLabel = "handler"
	CodeLabel    = "code"

	OutcomeSolved     = "solved"
	OutcomeExhausted  = "exhausted"
	OutcomeUnsat      = "not_satisfiable"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
	EngineRandomized  = "randomized"
	EngineExact       = "exact"
)

var (
	// ArrangeDuration observes wall time per arrangement by engine and
	// outcome.
	ArrangeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seatgrid_arrange_duration_seconds",
			Help:    "Wall time of arrangement requests.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		},
		[]string{EngineLabel, OutcomeLabel},
	)

	// ArrangeAttempts counts placement attempts consumed by the randomized
	// engine, successes and failures alike.
	ArrangeAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "seatgrid_arrange_attempts_total",
			Help: "Cell placement attempts consumed by the randomized engine.",
		},
	)

	// HTTPRequests counts served requests by handler and status code.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seatgrid_http_requests_total",
			Help: "HTTP requests served.",
		},
		[]string{HandlerLabel, CodeLabel},
	)
)

// Register installs every collector on r. Call once per process;
// registering the same collectors twice panics by prometheus contract.
func Register(r prometheus.Registerer) {
	r.MustRegister(
		ArrangeDuration,
		ArrangeAttempts,
		HTTPRequests,
	)
}
