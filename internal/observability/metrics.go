package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce             sync.Once
	resolutionsTotal         *prometheus.CounterVec
	resolutionLatencySeconds *prometheus.HistogramVec
	resolutionCacheTotal     *prometheus.CounterVec
	httpRequestsTotal        *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		resolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grade_resolutions_total",
			Help: "Total number of grade resolutions performed, by outcome status.",
		}, []string{"status"})

		resolutionLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grade_resolution_latency_seconds",
			Help:    "Latency distribution for grade resolution, fetch included.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"scope"})

		resolutionCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grade_resolution_cache_total",
			Help: "Resolution cache lookups, by result.",
		}, []string{"result"})

		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(resolutionsTotal, resolutionLatencySeconds, resolutionCacheTotal, httpRequestsTotal)
	})
}

// Resolutions exposes the counter for completed resolutions.
func Resolutions() *prometheus.CounterVec {
	RegisterMetrics()
	return resolutionsTotal
}

// ResolutionLatency exposes the latency histogram for resolutions.
func ResolutionLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return resolutionLatencySeconds
}

// ResolutionCache exposes the counter for cache hits and misses.
func ResolutionCache() *prometheus.CounterVec {
	RegisterMetrics()
	return resolutionCacheTotal
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}
