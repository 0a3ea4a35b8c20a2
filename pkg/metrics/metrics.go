package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DB query duration in seconds, by repository operation and outcome.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skilllink_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "outcome"},
	)

	DBUpdateCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skilllink_db_update_total",
			Help: "Total number of mutating statements, by outcome",
		},
		[]string{"operation", "outcome"}, // outcome: committed, rolled_back
	)

	SlowQueryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skilllink_db_slow_query_total",
			Help: "Total number of statements slower than the configured threshold",
		},
		[]string{"sql"},
	)

	SlowQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skilllink_db_slow_query_duration_seconds",
			Help:    "Duration of slow statements in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skilllink_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	UserStatusEventCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skilllink_user_status_events_total",
			Help: "User status change events, by routing key and publish result",
		},
		[]string{"routing_key", "result"},
	)

	SessionConnectCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skilllink_db_session_connects_total",
			Help: "Database session connect attempts, by result",
		},
		[]string{"result"},
	)
)

func RecordDBQueryDuration(operation, outcome string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

func IncrementDBUpdate(operation, outcome string) {
	DBUpdateCount.WithLabelValues(operation, outcome).Inc()
}

func IncrementSlowQuery(sql string, duration time.Duration) {
	SlowQueryCount.WithLabelValues(sql).Inc()
	SlowQueryDuration.Observe(duration.Seconds())
}

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementUserStatusEvent(routingKey, result string) {
	UserStatusEventCount.WithLabelValues(routingKey, result).Inc()
}

func IncrementSessionConnect(result string) {
	SessionConnectCount.WithLabelValues(result).Inc()
}
