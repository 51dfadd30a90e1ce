// Package app wires configuration into the online services and the ingestion pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/config"
	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/domain/corpus"
	"github.com/kailas-cloud/supportdesk/internal/lexical"
	"github.com/kailas-cloud/supportdesk/internal/metrics"
	"github.com/kailas-cloud/supportdesk/internal/repository/source"
	"github.com/kailas-cloud/supportdesk/internal/repository/vectorstore"
	healthuc "github.com/kailas-cloud/supportdesk/internal/usecase/health"
	ingestuc "github.com/kailas-cloud/supportdesk/internal/usecase/ingest"
	orderuc "github.com/kailas-cloud/supportdesk/internal/usecase/order"
	queryuc "github.com/kailas-cloud/supportdesk/internal/usecase/query"
)

const healthTimeout = 3 * time.Second

// Services are the online use cases built from one configuration.
type Services struct {
	Query  *queryuc.Service
	Orders *orderuc.Service
	Health *healthuc.Service

	closers []func()
}

// Close releases store and cache connections.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// NewServices loads the source tables, builds the lexical corpus and, unless
// retrieval is lexical-only, opens the vector store and the query embedder.
// Missing source tables are empty; an empty vector store leaves only lexical scoring.
func NewServices(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Services, error) {
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterRetrievalMetrics()

	products, err := source.Optional(source.LoadProducts(cfg.Data.Products))
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	policies, err := source.Optional(source.LoadPolicies(cfg.Data.Policies))
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}
	orders, err := source.Optional(source.LoadOrders(cfg.Data.Orders))
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	docs, err := corpus.Build(corpus.OnlineTemplate, products, policies)
	if err != nil {
		return nil, fmt.Errorf("build corpus: %w", err)
	}
	lex := lexical.NewScorer(docs)
	logger.Info("Lexical index built",
		zap.Int("documents", lex.Len()),
		zap.Int("orders", len(orders)),
	)

	mode, err := queryuc.ParseMode(cfg.Retrieval.Mode)
	if err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}

	svc := &Services{}
	var (
		vec        queryuc.Scorer
		embChecker healthuc.EmbeddingChecker
		storePing  healthuc.Pinger
		cachePing  healthuc.Pinger
	)
	if mode != queryuc.ModeLexical && cfg.Embedding.Enabled() {
		v, err := svc.openVector(ctx, cfg, logger)
		if err != nil {
			svc.Close()
			return nil, err
		}
		storePing, cachePing = v.storePing, v.cachePing
		if v.scorer.Len() > 0 {
			vec = v.scorer
			if hc, ok := v.embedder.(domain.HealthChecker); ok {
				embChecker = hc
			}
		} else {
			logger.Warn("Vector store is empty, serving lexical results")
		}
	}

	query, err := queryuc.New(lex, vec, queryuc.Config{
		Mode:              mode,
		TopK:              cfg.Retrieval.TopK,
		Timeout:           time.Duration(cfg.Retrieval.QueryTimeoutMs) * time.Millisecond,
		FallbackToLexical: cfg.Retrieval.Fallback(),
	}, logger)
	if err != nil {
		svc.Close()
		return nil, fmt.Errorf("query service: %w", err)
	}
	logger.Info("Query service ready", zap.String("strategy", string(query.Strategy())))

	svc.Query = query
	svc.Orders = orderuc.New(source.NewOrderRepo(orders))
	svc.Health = healthuc.New(embChecker).
		WithPinger("store", storePing).
		WithPinger("cache", cachePing).
		WithCorpus(string(query.Strategy()), lex.Len()).
		WithTimeout(healthTimeout)
	return svc, nil
}

type vectorPath struct {
	scorer    *vectorstore.Scorer
	embedder  domain.Embedder
	storePing healthuc.Pinger
	cachePing healthuc.Pinger
}

func (s *Services) openVector(ctx context.Context, cfg config.Config, logger *zap.Logger) (vectorPath, error) {
	backend, storePing, closeStore, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return vectorPath{}, err
	}
	s.closers = append(s.closers, closeStore)

	cache, cachePing, closeCache, err := openCache(ctx, cfg.Cache, logger)
	if err != nil {
		return vectorPath{}, err
	}
	s.closers = append(s.closers, closeCache)

	embedder := buildEmbedder(cfg.Embedding, cfg.Embedding.QueryInstruction, cache,
		time.Duration(cfg.Cache.TTLSec)*time.Second, logger)

	store := vectorstore.New(backend, embedder)
	index, err := store.Snapshot(ctx)
	if err != nil {
		return vectorPath{}, fmt.Errorf("load vector store: %w", err)
	}
	logger.Info("Vector store loaded",
		zap.String("driver", cfg.Store.Driver),
		zap.Int("records", index.Len()),
		zap.Int("dimensions", index.Dim()),
	)

	return vectorPath{
		scorer:    vectorstore.NewScorer(store, index),
		embedder:  embedder,
		storePing: storePing,
		cachePing: cachePing,
	}, nil
}

// Ingest is a ready-to-run ingestion pipeline with its store connection.
type Ingest struct {
	Pipeline *ingestuc.Pipeline
	close    func()
}

// Close releases the store connection.
func (i *Ingest) Close() { i.close() }

// NewIngest wires the ingestion pipeline. Unlike serving, missing source tables are errors.
func NewIngest(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Ingest, error) {
	if !cfg.Embedding.Enabled() {
		return nil, errors.New("ingestion requires embedding.api_key")
	}
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterRetrievalMetrics()

	backend, _, closeStore, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	embedder := buildEmbedder(cfg.Embedding, cfg.Embedding.DocumentInstruction, nil, 0, logger)
	files := source.Files{ProductsPath: cfg.Data.Products, PoliciesPath: cfg.Data.Policies}

	pipeline := ingestuc.New(files, embedder, vectorstore.New(backend, nil), logger).
		WithBatchSize(cfg.Embedding.BatchSize)
	return &Ingest{Pipeline: pipeline, close: closeStore}, nil
}

