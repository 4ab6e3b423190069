// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	StoreWriteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "document_store_write_duration_seconds",
			Help:    "Duration of full collection rewrites in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"collection", "status"},
	)

	AssistantCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_call_latency_ms",
			Help:    "Assistant provider call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
		[]string{"status"},
	)

	BudgetsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "budgets_created_total",
			Help: "Total number of budgets created",
		},
	)

	BudgetStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_status_changes_total",
			Help: "Budget status assignments by target status",
		},
		[]string{"status"},
	)

	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Reports generated by format and outcome",
		},
		[]string{"format", "status"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordStoreWrite(collection, status string, duration time.Duration) {
	StoreWriteDuration.WithLabelValues(collection, status).Observe(duration.Seconds())
}

func RecordAssistantCall(status string, duration time.Duration) {
	AssistantCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

func IncrementBudgetsCreated() {
	BudgetsCreated.Inc()
}

func IncrementStatusChange(status string) {
	BudgetStatusChanges.WithLabelValues(status).Inc()
}

func IncrementReport(format, status string) {
	ReportsGenerated.WithLabelValues(format, status).Inc()
}
