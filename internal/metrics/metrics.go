// Package metrics provides Prometheus metrics collection for the container order service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// EngineOperationsTotal tracks fill engine operations by operation and result.
	EngineOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fill_engine_operations_total",
			Help: "Total number of fill engine operations",
		},
		[]string{"operation", "result"},
	)

	// ContainerFillRatio observes the fill ratio of containers after accepted mutations.
	ContainerFillRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "container_fill_ratio",
			Help:    "Fill ratio of a container after an accepted mutation",
			Buckets: []float64{0.1, 0.25, 0.5, 0.75, 0.85, 0.9, 0.95, 1.0},
		},
	)

	// ActiveSessions tracks the number of live order sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_sessions_active",
			Help: "Number of live order sessions",
		},
	)

	// CatalogLookupsTotal tracks variant lookups against the catalog by result.
	CatalogLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookups_total",
			Help: "Total number of catalog variant lookups",
		},
		[]string{"result"},
	)

	// CatalogLookupDuration tracks catalog round-trip duration.
	CatalogLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_lookup_duration_seconds",
			Help:    "Catalog variant lookup duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// OrderSubmissionsTotal tracks order submissions by status.
	OrderSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_submissions_total",
			Help: "Total number of order submissions",
		},
		[]string{"status"},
	)

	// CircuitBreakerState reports each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CircuitBreakerTransitionsTotal counts breaker state changes by target state.
	CircuitBreakerTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "to"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEngineOperation records the result of a fill engine operation.
func RecordEngineOperation(operation, result string) {
	EngineOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordFillRatio records a container fill ratio.
func RecordFillRatio(ratio float64) {
	ContainerFillRatio.Observe(ratio)
}

// SetActiveSessions sets the live session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// RecordCatalogLookup records a catalog lookup and its duration.
func RecordCatalogLookup(duration time.Duration, result string) {
	CatalogLookupDuration.Observe(duration.Seconds())
	CatalogLookupsTotal.WithLabelValues(result).Inc()
}

// RecordOrderSubmission records an order submission outcome.
func RecordOrderSubmission(status string) {
	OrderSubmissionsTotal.WithLabelValues(status).Inc()
}

// RecordCircuitBreakerState sets the state gauge of a breaker and counts the
// transition when the state actually changed.
func RecordCircuitBreakerState(name string, from, to int, toLabel string) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(to))
	if from != to {
		CircuitBreakerTransitionsTotal.WithLabelValues(name, toLabel).Inc()
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}
