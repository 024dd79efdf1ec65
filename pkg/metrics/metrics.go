package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds every collector exposed on /metrics
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// Buckets tuned for API calls against a remote document store
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Client Metrics (MongoDB)
	DBOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"db_collection_name", "db_operation_name", "status"},
	)

	DBOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"db_collection_name", "db_operation_name", "status"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	// Auth Metrics
	TokensIssued = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langexchange_tokens_issued_total",
			Help: "Total number of session tokens issued",
		},
		[]string{"status"},
	)

	TokenVerifications = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langexchange_token_verifications_total",
			Help: "Total number of session token verifications by outcome",
		},
		[]string{"outcome"}, // "valid", "missing", "invalid", "expired"
	)

	OwnershipDenials = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "langexchange_ownership_denials_total",
			Help: "Requests rejected because the token owner did not match the resource owner",
		},
	)

	// Business Metrics
	TutorWrites = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langexchange_tutor_writes_total",
			Help: "Total number of tutor create/replace/delete operations",
		},
		[]string{"operation", "status"},
	)

	BookingsCreated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langexchange_bookings_created_total",
			Help: "Total number of booking submissions",
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

func init() {
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
// until stop is closed.
func RecordInfrastructureMetrics(stop <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// StatusLabel maps an operation error to the "status" label value
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
