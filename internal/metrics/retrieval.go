package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Retrieval and ingestion Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Answered questions by retrieval strategy",
		},
		[]string{"strategy"}, // "lexical" / "vector" / "hybrid" / "lexical_fallback"
	)

	QueryFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_fallbacks_total",
			Help:      "Vector queries degraded to lexical scoring",
		},
		[]string{"reason"}, // "timeout" / "provider_error"
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Retrieval latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"strategy"},
	)

	IngestRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_runs_total",
			Help:      "Ingestion runs by outcome",
		},
		[]string{"status"}, // "success" / "error"
	)

	IngestDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingest_documents",
			Help:      "Documents written by the last successful ingestion run",
		},
	)
)

var registerRetrieval sync.Once

// RegisterRetrievalMetrics registers query and ingestion metrics. Repeated calls are no-ops.
func RegisterRetrievalMetrics() {
	registerRetrieval.Do(func() {
		prometheus.MustRegister(QueriesTotal, QueryFallbacksTotal, QueryDuration, IngestRunsTotal, IngestDocuments)
	})
}
