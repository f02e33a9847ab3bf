// Vinarium - Wine Cellar Analytics and Drinking-Window Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinarium

// Package metrics defines Prometheus instrumentation for Vinarium.
// All collectors are registered on the default registry via promauto
// and exposed at /metrics by the API server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts recommendation requests by mode and outcome.
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinarium_recommendation_requests_total",
			Help: "Total recommendation requests by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	// RecommendationDuration observes recommendation generation latency.
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vinarium_recommendation_duration_seconds",
			Help:    "Recommendation generation latency by mode.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// AlertsDetected counts drinking-window alerts by kind.
	AlertsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinarium_alerts_detected_total",
			Help: "Drinking-window alerts detected by kind.",
		},
		[]string{"kind"},
	)

	// SweepDuration observes full alert-sweep latency.
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vinarium_sweep_duration_seconds",
			Help:    "Duration of a full drinking-window sweep.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
	)

	// SweepWinesProcessed counts wines examined by the sweep service.
	SweepWinesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vinarium_sweep_wines_processed_total",
			Help: "Wines examined by the sweep service.",
		},
	)

	// StatusTransitions counts cached-status changes applied during
	// refresh, labeled by the new status.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinarium_status_transitions_total",
			Help: "Drinking-window status transitions by new status.",
		},
		[]string{"to"},
	)

	// ReasoningRequests counts reasoning-service calls by outcome
	// (ok, error, rejected, rate_limited).
	ReasoningRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinarium_reasoning_requests_total",
			Help: "Reasoning-service requests by outcome.",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState exposes breaker state by name
	// (0 closed, 1 half-open, 2 open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vinarium_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		},
		[]string{"name"},
	)

	// AlertsPublished counts alert reports published to the in-process bus.
	AlertsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vinarium_alerts_published_total",
			Help: "Alert reports published to the message bus.",
		},
	)

	// WebhookDeliveries counts webhook notification attempts by outcome.
	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinarium_webhook_deliveries_total",
			Help: "Webhook notification attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// HTTPRequests counts API requests by method, route, and status class.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vinarium_http_requests_total",
			Help: "API requests by method, route, and status class.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes API request latency by route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vinarium_http_request_duration_seconds",
			Help:    "API request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// ObserveRecommendation records one recommendation request.
func ObserveRecommendation(mode, outcome string, elapsed time.Duration) {
	RecommendationRequests.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// ObserveSweep records one completed sweep cycle.
func ObserveSweep(elapsed time.Duration, winesProcessed int) {
	SweepDuration.Observe(elapsed.Seconds())
	SweepWinesProcessed.Add(float64(winesProcessed))
}
