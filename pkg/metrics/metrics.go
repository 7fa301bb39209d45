package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Alert emails attempted, labelled by outcome.
	AlertEmailCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_email_count",
			Help: "Total number of mixed-order alert emails attempted",
		},
		[]string{"status"}, // status: sent, failed, no_recipients
	)

	// Digest runs, labelled by outcome.
	DigestRunCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digest_run_count",
			Help: "Total number of daily digest runs",
		},
		[]string{"status"}, // status: sent, empty, failed
	)

	// Qualifying orders included in the last digest.
	DigestOrderCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "digest_order_count",
			Help: "Orders included in the most recent daily digest",
		},
	)

	// Notes inspected by the alert pipeline, labelled by disposition.
	NoteProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_processed_count",
			Help: "Order notes inspected by the alert pipeline",
		},
		[]string{"result"}, // result: alerted, skipped, duplicate
	)

	// MQ consume latency in milliseconds.
	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)

	// Database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

// IncrementAlertEmail counts one alert email attempt.
func IncrementAlertEmail(status string) {
	AlertEmailCount.WithLabelValues(status).Inc()
}

// IncrementDigestRun counts one digest run.
func IncrementDigestRun(status string) {
	DigestRunCount.WithLabelValues(status).Inc()
}

// SetDigestOrderCount records how many orders the last digest covered.
func SetDigestOrderCount(n int) {
	DigestOrderCount.Set(float64(n))
}

// IncrementNoteProcessed counts one inspected order note.
func IncrementNoteProcessed(result string) {
	NoteProcessedCount.WithLabelValues(result).Inc()
}

// RecordMQConsumeLatency records MQ consumption latency.
func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}

// RecordDBQueryDuration records database query latency.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
