package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Recommendations counts recommendation outcomes by algorithm.
	Recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "recommendations_total", Help: "Recommendation requests by algorithm and outcome."},
		[]string{"algorithm", "outcome"},
	)
	// RecommendDuration tracks end-to-end recommendation latency.
	RecommendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "recommendation_duration_seconds", Help: "Recommendation latency in seconds.", Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}},
		[]string{"algorithm"},
	)
	// TrucksEvaluated observes candidate counts per request.
	TrucksEvaluated = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "trucks_evaluated_per_request", Help: "Candidate trucks evaluated per request.", Buckets: []float64{1, 2, 5, 10, 20, 50, 100}},
	)
	// CacheHits counts response-cache lookups.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "recommendation_cache_lookups_total", Help: "Response cache lookups by result."},
		[]string{"result"},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Recommendations)
		Registry.MustRegister(RecommendDuration)
		Registry.MustRegister(TrucksEvaluated)
		Registry.MustRegister(CacheHits)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
