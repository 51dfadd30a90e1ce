// Package metrics holds the Prometheus collectors for the service.
// Nothing is registered at import time; main and the tests opt in through
// the Register functions.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "supportdesk"

var (
	// EmbeddingRequestsTotal counts provider calls by outcome: "success" or "error".
	EmbeddingRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_requests_total",
		Help:      "Embedding provider calls by outcome",
	}, []string{"provider", "model", "status"})

	// EmbeddingRequestDuration measures provider round trips, failed ones included.
	EmbeddingRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "embedding_request_duration_seconds",
		Help:      "Embedding provider round trip in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"provider", "model"})

	// EmbeddingTokensTotal counts billed tokens; type is "prompt" or "total".
	EmbeddingTokensTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_tokens_total",
		Help:      "Tokens billed by the embedding provider",
	}, []string{"provider", "model", "type"})

	// EmbeddingErrorsTotal classifies failures: api_error, rate_limited, misaligned and so on.
	EmbeddingErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_errors_total",
		Help:      "Embedding failures by kind",
	}, []string{"provider", "model", "error_type"})

	// EmbeddingRetriesTotal counts retried calls; op is "embed" or "batch".
	EmbeddingRetriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_retries_total",
		Help:      "Embedding calls retried after a transient provider failure",
	}, []string{"op"})

	// EmbeddingCacheTotal counts query cache lookups; result is "hit" or "miss".
	EmbeddingCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_cache_total",
		Help:      "Query embedding cache lookups",
	}, []string{"result"})
)

var registerEmbedding sync.Once

// RegisterEmbeddingMetrics registers the embedding collectors with the default registry.
// Repeated calls are no-ops.
func RegisterEmbeddingMetrics() {
	registerEmbedding.Do(func() {
		prometheus.MustRegister(
			EmbeddingRequestsTotal,
			EmbeddingRequestDuration,
			EmbeddingTokensTotal,
			EmbeddingErrorsTotal,
			EmbeddingRetriesTotal,
			EmbeddingCacheTotal,
		)
	})
}

// ObserveEmbeddingCall records one provider round trip. Token counts are
// recorded only for successful calls that report usage.
func ObserveEmbeddingCall(provider, model string, elapsed time.Duration, err error, promptTokens, totalTokens int) {
	EmbeddingRequestDuration.WithLabelValues(provider, model).Observe(elapsed.Seconds())
	if err != nil {
		EmbeddingRequestsTotal.WithLabelValues(provider, model, "error").Inc()
		EmbeddingErrorsTotal.WithLabelValues(provider, model, "api_error").Inc()
		return
	}
	EmbeddingRequestsTotal.WithLabelValues(provider, model, "success").Inc()
	if totalTokens > 0 {
		EmbeddingTokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(promptTokens))
		EmbeddingTokensTotal.WithLabelValues(provider, model, "total").Add(float64(totalTokens))
	}
}
