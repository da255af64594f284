// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for auth events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics contains the application collectors.
type Metrics struct {
	AuthEvents   *prometheus.CounterVec
	GamesCreated prometheus.Counter
	HTTPRequests *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "footballfinder_auth_events_total",
				Help: "Total number of authentication events by event and outcome",
			},
			[]string{"event", "outcome"},
		),
		GamesCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "footballfinder_games_created_total",
				Help: "Total number of games created",
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "footballfinder_http_requests_total",
				Help: "Total number of HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
	}

	reg.MustRegister(m.AuthEvents)
	reg.MustRegister(m.GamesCreated)
	reg.MustRegister(m.HTTPRequests)
	return m
}

// RecordAuth increments the auth event counter.
func (m *Metrics) RecordAuth(event string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.AuthEvents.WithLabelValues(event, outcome).Inc()
}
