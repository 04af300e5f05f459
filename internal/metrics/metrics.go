// Package metrics holds the Prometheus collectors of the MediaFinder server.
// Collectors are registered on the default registry, which is what the
// /metrics endpoint exposes.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mediafinder"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	sessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Session lifecycle events",
		},
		[]string{"event"},
	)

	searchesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_saved_total",
			Help:      "Total number of saved searches",
		},
	)

	mediaRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_requests_total",
			Help:      "Total number of proxied media requests",
		},
		[]string{"provider", "cache_hit", "status"},
	)

	mediaRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "media_request_duration_seconds",
			Help:      "Duration of upstream media provider calls in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		},
		[]string{"provider"},
	)
)

// Session lifecycle events.
const (
	SessionCreated   = "created"
	SessionDestroyed = "destroyed"
	SessionExpired   = "expired"
)

// RequestStarted marks a request as in flight. The returned func records
// the outcome and must be called once the response is written.
func RequestStarted(method string) func(route string, status int) {
	start := time.Now()
	httpRequestsInFlight.Inc()

	return func(route string, status int) {
		httpRequestsInFlight.Dec()
		if route == "" {
			route = "unknown"
		}
		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordSession counts a session lifecycle event, n times.
func RecordSession(event string, n int) {
	if n <= 0 {
		return
	}
	sessionsTotal.WithLabelValues(event).Add(float64(n))
}

func RecordSearchSaved() {
	searchesSavedTotal.Inc()
}

// RecordMediaRequest counts a proxied media request. status is 0 when the
// upstream could not be reached.
func RecordMediaRequest(provider string, cacheHit bool, status int, took time.Duration) {
	mediaRequestsTotal.WithLabelValues(provider, strconv.FormatBool(cacheHit), strconv.Itoa(status)).Inc()
	if !cacheHit {
		mediaRequestDuration.WithLabelValues(provider).Observe(took.Seconds())
	}
}
