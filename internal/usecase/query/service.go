// Package query answers questions by ranking the corpus with the configured scorer.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/logger"
	"github.com/kailas-cloud/supportdesk/internal/metrics"
)

// DefaultTopK is the number of documents returned per question.
const DefaultTopK = 5

// Config tunes scorer selection and degradation.
type Config struct {
	Mode Mode
	TopK int
	// Timeout bounds the vector path (query embedding). 0 disables it.
	Timeout           time.Duration
	FallbackToLexical bool
}

// Result is the ranked outcome of one question.
type Result struct {
	Results    []domain.ScoredDocument
	HasResults bool
	Strategy   Strategy
}

// Service picks a scorer per question and degrades to lexical on provider failure.
// Hybrid mode fuses both rankings with Reciprocal Rank Fusion.
type Service struct {
	lexical Scorer
	vector  Scorer
	cfg     Config
	logger  *zap.Logger
}

// New creates a query service. vector may be nil when no store is available;
// ModeVector then fails at construction.
func New(lexical, vector Scorer, cfg Config, logger *zap.Logger) (*Service, error) {
	if lexical == nil {
		return nil, errors.New("lexical scorer is required")
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeAuto
	}
	if cfg.Mode == ModeVector && vector == nil {
		return nil, fmt.Errorf("mode %q without a vector store: %w", ModeVector, domain.ErrProviderUnavailable)
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	return &Service{lexical: lexical, vector: vector, cfg: cfg, logger: logger}, nil
}

// Strategy returns the scorer used when nothing fails.
func (s *Service) Strategy() Strategy {
	switch {
	case s.cfg.Mode == ModeLexical || s.vector == nil:
		return StrategyLexical
	case s.cfg.Mode == ModeHybrid:
		return StrategyHybrid
	default:
		return StrategyVector
	}
}

// Answer ranks the corpus for question. No matching documents is an empty, successful result.
func (s *Service) Answer(ctx context.Context, question string) (Result, error) {
	if strings.TrimSpace(question) == "" {
		return Result{}, fmt.Errorf("question is required: %w", domain.ErrInvalidInput)
	}

	strategy := s.Strategy()
	start := time.Now()

	var (
		docs []domain.ScoredDocument
		err  error
	)
	if strategy != StrategyLexical {
		docs, err = s.vectorTopK(ctx, question)
		if err != nil {
			reason, ok := s.fallbackReason(ctx, err)
			if !ok {
				return Result{}, fmt.Errorf("vector retrieval: %w", err)
			}
			metrics.QueryFallbacksTotal.WithLabelValues(reason).Inc()
			logger.FromContext(ctx).Warn("Vector retrieval failed, falling back to lexical",
				zap.String("reason", reason),
				zap.Error(err),
			)
			strategy = StrategyLexicalFallback
		}
	}
	if strategy != StrategyVector {
		var lex []domain.ScoredDocument
		lex, err = s.lexical.TopK(ctx, question, s.cfg.TopK)
		if err != nil {
			return Result{}, fmt.Errorf("lexical retrieval: %w", err)
		}
		if strategy == StrategyHybrid {
			docs = fuseRRF(docs, lex, s.cfg.TopK)
		} else {
			docs = lex
		}
	}

	metrics.QueriesTotal.WithLabelValues(string(strategy)).Inc()
	metrics.QueryDuration.WithLabelValues(string(strategy)).Observe(time.Since(start).Seconds())
	s.logger.Debug("Question answered",
		zap.String("strategy", string(strategy)),
		zap.Int("results", len(docs)),
		zap.Duration("duration", time.Since(start)),
	)

	return Result{Results: docs, HasResults: len(docs) > 0, Strategy: strategy}, nil
}

func (s *Service) vectorTopK(ctx context.Context, question string) ([]domain.ScoredDocument, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	return s.vector.TopK(ctx, question, s.cfg.TopK) //nolint:wrapcheck // classified by caller
}

// fallbackReason decides whether err may be answered lexically instead.
// Caller cancellation and non-provider faults are never masked.
func (s *Service) fallbackReason(ctx context.Context, err error) (string, bool) {
	if !s.cfg.FallbackToLexical || ctx.Err() != nil {
		return "", false
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout", true
	case errors.Is(err, domain.ErrEmbeddingProviderError),
		errors.Is(err, domain.ErrRateLimited),
		errors.Is(err, domain.ErrProviderUnavailable),
		errors.Is(err, domain.ErrEmbeddingMisaligned):
		return "provider_error", true
	default:
		return "", false
	}
}
