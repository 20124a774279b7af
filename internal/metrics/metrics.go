// Package metrics exposes Prometheus collectors for the storefront functions.
//
// Collectors are registered on the default registry at package init, so the
// local server can serve them with promhttp.Handler(). Lambda functions record
// into the same collectors; they are only scraped when running locally.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Notification outcomes
const (
	OutcomeSent     = "sent"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	// Request Metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Total number of requests handled per function and route",
		},
		[]string{"function", "route", "status_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Duration of requests in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"function", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_active_requests",
			Help: "Number of requests currently in flight on the local server",
		},
	)

	// Engine Metrics
	EngineResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_engine_results",
			Help:    "Number of products returned per engine call",
			Buckets: []float64{0, 1, 2, 4, 8, 12, 16, 20},
		},
		[]string{"engine"},
	)

	// Notification Metrics
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_notifications_total",
			Help: "Total number of notification requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

// RecordRequest records a completed request
func RecordRequest(function, route string, statusCode int, duration time.Duration) {
	RequestsTotal.WithLabelValues(function, route, strconv.Itoa(statusCode)).Inc()
	RequestDuration.WithLabelValues(function, route).Observe(duration.Seconds())
}

// RecordEngineResults records the size of a recommendation or search result set
func RecordEngineResults(engine string, count int) {
	EngineResults.WithLabelValues(engine).Observe(float64(count))
}

// RecordNotification records the outcome of a notification request
func RecordNotification(kind, outcome string) {
	NotificationsTotal.WithLabelValues(kind, outcome).Inc()
}

// TrackActiveRequest tracks in-flight requests
func TrackActiveRequest(inc bool) {
	if inc {
		ActiveRequests.Inc()
	} else {
		ActiveRequests.Dec()
	}
}

// RequestObserver feeds routed Lambda requests into the request collectors
type RequestObserver struct{}

// ObserveRequest implements lambda.Observer
func (RequestObserver) ObserveRequest(function, route string, statusCode int, duration time.Duration) {
	RecordRequest(function, route, statusCode, duration)
}
