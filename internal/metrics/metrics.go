// Package metrics records Prometheus metrics for the inventory API.
//
// It is a leaf package so the database, middleware and service layers can
// all record into it without import cycles.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inventory"

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

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
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// validationRejections counts requests stopped by a request validator.
	validationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Total number of requests rejected by a request validator",
		},
		[]string{"validator", "status"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	dbQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_query_errors_total",
			Help:      "Total number of database query errors",
		},
		[]string{"operation"},
	)

	dbSlowQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_slow_queries_total",
			Help:      "Total number of queries slower than the configured threshold",
		},
		[]string{"operation"},
	)

	lookupCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_cache_results_total",
			Help:      "Category/area lookup cache results",
		},
		[]string{"entity", "result"},
	)

	stockAlertsEnqueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_alerts_enqueued_total",
			Help:      "Total number of low stock alert jobs enqueued",
		},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records one served request. route is the route template
// (e.g. /api/v1/products/:id), never the raw URL.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordValidationRejection records a request rejected by validator.
func RecordValidationRejection(validator string, status int) {
	validationRejections.WithLabelValues(validator, strconv.Itoa(status)).Inc()
}

// RecordDBQuery records a finished query.
func RecordDBQuery(sql string, duration time.Duration, err error, slow bool) {
	operation := Operation(sql)

	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		dbQueryErrors.WithLabelValues(operation).Inc()
	}
	if slow {
		dbSlowQueries.WithLabelValues(operation).Inc()
	}
}

// RecordCacheLookup records a lookup cache hit, miss or error.
func RecordCacheLookup(entity, result string) {
	lookupCacheResults.WithLabelValues(entity, result).Inc()
}

// RecordStockAlert records an enqueued low stock alert.
func RecordStockAlert() {
	stockAlertsEnqueued.Inc()
}

// Operation returns the lowercased SQL verb used as the operation label.
func Operation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
