// Package observability provides tracing and metrics instrumentation.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "secretely_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "secretely_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// TokensIssued counts tokens issued by endpoint.
	TokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "secretely_tokens_issued_total",
		Help: "Total number of session tokens issued",
	})

	// PostsCreated counts created posts by type.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "secretely_posts_created_total",
		Help: "Total number of posts created by type",
	}, []string{"type"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
