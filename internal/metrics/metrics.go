package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the shop API.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	shopsCreated     prometheus.Counter
	nearbyLatency    prometheus.Histogram
	nearbyCandidates prometheus.Histogram
	nearbyResults    prometheus.Histogram
}

// NewMetrics creates and registers all shop API metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shop_api_requests_total",
				Help: "Total number of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		shopsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "shops_created_total",
				Help: "Total number of shop records created",
			},
		),
		nearbyLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nearby_query_latency_ms",
				Help:    "Latency of nearby queries in milliseconds",
				Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		nearbyCandidates: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nearby_query_candidates",
				Help:    "Number of candidates returned by the bounding-box prefilter",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		nearbyResults: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nearby_query_results",
				Help:    "Number of shops within the requested radius",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// IncRequest increments the request counter for a handled request.
func (m *Metrics) IncRequest(method, route string, status int) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// IncShopsCreated increments the created-shops counter.
func (m *Metrics) IncShopsCreated() {
	m.shopsCreated.Inc()
}

// ObserveNearby records prefilter and refinement sizes plus query latency.
func (m *Metrics) ObserveNearby(candidates, results int, elapsed time.Duration) {
	m.nearbyCandidates.Observe(float64(candidates))
	m.nearbyResults.Observe(float64(results))
	m.nearbyLatency.Observe(float64(elapsed.Microseconds()) / 1000.0)
}
