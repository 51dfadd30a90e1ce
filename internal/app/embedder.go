package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/config"
	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/metrics"
	"github.com/kailas-cloud/supportdesk/internal/repository/embcache"
	openaiEmb "github.com/kailas-cloud/supportdesk/internal/transport/openai"
	embeddinguc "github.com/kailas-cloud/supportdesk/internal/usecase/embedding"
)

// buildEmbedder assembles the decorator chain:
// OpenAI -> Retrying -> Cached (optional) -> Instrumented -> Instruction (optional).
func buildEmbedder(
	cfg config.EmbeddingConfig,
	instruction string,
	cache embcache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) domain.Embedder {
	// Base provider (with transport metrics built-in)
	base := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		Dimensions: cfg.Dimensions,
		Provider:   cfg.Provider,
		Timeout:    time.Duration(cfg.TimeoutSec) * time.Second,
		Logger:     logger,
	})

	var embedder domain.Embedder = embeddinguc.NewRetryingEmbedder(base, embeddinguc.RetryConfig{
		MaxRetries: cfg.Retries(),
		RateLimit:  cfg.RateLimitRPS,
	}, metrics.EmbeddingRetriesTotal, logger)

	if cache != nil {
		embedder = embcache.New(embedder, cache, embcache.Config{
			Provider:   cfg.Provider,
			BaseURL:    cfg.BaseURL,
			Model:      base.Model(),
			Dimensions: cfg.Dimensions,
			TTL:        cacheTTL,
		}, metrics.EmbeddingCacheTotal, logger)
	}

	embedder = embeddinguc.NewInstrumentedEmbedder(
		embedder, cfg.Provider, base.Model(), cfg.BatchSize, logger,
	)

	// Outermost, so cache keys include the prefix.
	return domain.WithInstruction(embedder, instruction)
}
