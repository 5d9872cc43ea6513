// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Backend inventory metrics
	BackendRequestsTotal   *prometheus.CounterVec
	BackendDurationSeconds prometheus.Histogram

	// Maps provider metrics
	MapsRequestsTotal   *prometheus.CounterVec
	MapsDurationSeconds *prometheus.HistogramVec

	// Contact router metrics
	ContactMatchesTotal *prometheus.CounterVec

	// NLU metrics
	IntentParsesTotal *prometheus.CounterVec

	// HTTP metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds prometheus.Histogram
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		BackendRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "classfinder_backend_requests_total",
				Help: "Total classroom backend requests by status",
			},
			[]string{"status"}, // status: success, error, empty
		),

		BackendDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classfinder_backend_duration_seconds",
				Help:    "Classroom backend request duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),

		MapsRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "classfinder_maps_requests_total",
				Help: "Total Google Maps requests by endpoint and status",
			},
			[]string{"endpoint", "status"}, // endpoint: geocode, distancematrix
		),

		MapsDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "classfinder_maps_duration_seconds",
				Help:    "Google Maps request duration in seconds by endpoint",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
			},
			[]string{"endpoint"},
		),

		ContactMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "classfinder_contact_matches_total",
				Help: "Contact router invocations by outcome",
			},
			[]string{"outcome"}, // outcome: matched, fallback
		),

		IntentParsesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "classfinder_intent_parses_total",
				Help: "NLU intent parses by provider and status",
			},
			[]string{"provider", "status"},
		),

		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "classfinder_chat_requests_total",
				Help: "Chat API requests by tool and status",
			},
			[]string{"tool", "status"},
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classfinder_chat_duration_seconds",
				Help:    "Chat request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
		),
	}
}
