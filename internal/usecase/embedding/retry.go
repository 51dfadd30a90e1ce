package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// RetryConfig controls retries of transient provider failures.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt. 0 disables retries.
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// RateLimit caps provider calls per second. 0 disables limiting.
	RateLimit float64
}

// RetryingEmbedder retries rate-limited and unavailable provider calls with
// exponential backoff. Any other error fails on the first attempt.
type RetryingEmbedder struct {
	inner   domain.Embedder
	cfg     RetryConfig
	limiter *rate.Limiter
	retries *prometheus.CounterVec
	logger  *zap.Logger
}

// NewRetryingEmbedder wraps inner. retries is a counter vec with label "op", may be nil.
func NewRetryingEmbedder(
	inner domain.Embedder, cfg RetryConfig,
	retries *prometheus.CounterVec, logger *zap.Logger,
) *RetryingEmbedder {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 5 * time.Second
	}
	r := &RetryingEmbedder{inner: inner, cfg: cfg, retries: retries, logger: logger}
	if cfg.RateLimit > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return r
}

// Embed calls the inner embedder, retrying transient failures.
func (r *RetryingEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	return retry(ctx, r, "embed", func() (domain.EmbeddingResult, error) {
		return r.inner.Embed(ctx, text) //nolint:wrapcheck // classified below
	})
}

// BatchEmbed calls the inner batch endpoint (or the fallback), retrying the whole batch.
func (r *RetryingEmbedder) BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	if len(texts) == 0 {
		return domain.BatchEmbeddingResult{}, nil
	}
	return retry(ctx, r, "batch", func() (domain.BatchEmbeddingResult, error) {
		return domain.EmbedBatch(ctx, r.inner, texts)
	})
}

// HealthCheck delegates to the inner embedder when it supports health checks.
func (r *RetryingEmbedder) HealthCheck(ctx context.Context) error {
	if hc, ok := r.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx) //nolint:wrapcheck // transparent decorator
	}
	return nil
}

func retry[T any](ctx context.Context, r *RetryingEmbedder, op string, call func() (T, error)) (T, error) {
	attempt := func() (T, error) {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				var zero T
				return zero, backoff.Permanent(fmt.Errorf("rate limiter: %w", err))
			}
		}
		res, err := call()
		if err != nil && !domain.IsTransient(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.cfg.InitialInterval
	eb.MaxInterval = r.cfg.MaxInterval

	res, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(uint(max(r.cfg.MaxRetries, 0))+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			if r.retries != nil {
				r.retries.WithLabelValues(op).Inc()
			}
			r.logger.Warn("Retrying embedding request",
				zap.String("operation", op),
				zap.Duration("backoff", next),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s with retry: %w", op, err)
	}
	return res, nil
}
