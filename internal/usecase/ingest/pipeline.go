// Package ingest rebuilds the vector store from the source tables.
package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/domain/corpus"
	"github.com/kailas-cloud/supportdesk/internal/metrics"
)

// DefaultBatchSize is the number of texts embedded per sub-batch.
const DefaultBatchSize = 256

// ProgressFunc is called after every embedded sub-batch.
type ProgressFunc func(done, total int)

// Report summarizes a successful run.
type Report struct {
	Documents    int
	Dimensions   int
	PromptTokens int
	TotalTokens  int
	Duration     time.Duration
}

// Pipeline builds the corpus, embeds every document and saves the result wholesale.
type Pipeline struct {
	sources   Sources
	embedder  domain.Embedder
	store     RecordSaver
	template  corpus.Template
	batchSize int
	progress  ProgressFunc
	logger    *zap.Logger
}

// New creates an ingestion pipeline using the embedding template.
func New(sources Sources, embedder domain.Embedder, store RecordSaver, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		sources:   sources,
		embedder:  embedder,
		store:     store,
		template:  corpus.EmbeddingTemplate,
		batchSize: DefaultBatchSize,
		logger:    logger,
	}
}

// WithBatchSize sets the sub-batch size. size <= 0 keeps the default.
func (p *Pipeline) WithBatchSize(size int) *Pipeline {
	if size > 0 {
		p.batchSize = size
	}
	return p
}

// WithProgress registers a callback invoked after each sub-batch.
func (p *Pipeline) WithProgress(fn ProgressFunc) *Pipeline {
	p.progress = fn
	return p
}

// Run executes the pipeline. The store is written only if every step succeeds.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	start := time.Now()

	report, err := p.run(ctx)
	if err != nil {
		metrics.IngestRunsTotal.WithLabelValues("error").Inc()
		p.logger.Error("Ingestion failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return Report{}, err
	}

	report.Duration = time.Since(start)
	metrics.IngestRunsTotal.WithLabelValues("success").Inc()
	metrics.IngestDocuments.Set(float64(report.Documents))
	p.logger.Info("Ingestion completed",
		zap.Int("documents", report.Documents),
		zap.Int("dimensions", report.Dimensions),
		zap.Int("total_tokens", report.TotalTokens),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

func (p *Pipeline) run(ctx context.Context) (Report, error) {
	products, err := p.sources.Products()
	if err != nil {
		return Report{}, fmt.Errorf("load products: %w", err)
	}
	policies, err := p.sources.Policies()
	if err != nil {
		return Report{}, fmt.Errorf("load policies: %w", err)
	}

	docs, err := corpus.Build(p.template, products, policies)
	if err != nil {
		return Report{}, fmt.Errorf("build corpus: %w", err)
	}
	p.logger.Info("Corpus built",
		zap.Int("products", len(products)),
		zap.Int("policies", len(policies)),
		zap.Int("documents", len(docs)),
	)

	embeddings, usage, err := p.embed(ctx, docs)
	if err != nil {
		return Report{}, err
	}

	records := make([]domain.StoredRecord, len(docs))
	for i, d := range docs {
		records[i] = domain.StoredRecord{Document: d, Embedding: embeddings[i]}
	}
	dim, err := domain.Dimensions(records)
	if err != nil {
		return Report{}, fmt.Errorf("validate embeddings: %w", err)
	}

	if err := p.store.Save(ctx, records); err != nil {
		return Report{}, fmt.Errorf("save store: %w", err)
	}

	return Report{
		Documents:    len(records),
		Dimensions:   dim,
		PromptTokens: usage.PromptTokens,
		TotalTokens:  usage.TotalTokens,
	}, nil
}

// embed vectorizes docs in sub-batches and checks every batch lines up with its input.
func (p *Pipeline) embed(ctx context.Context, docs []domain.Document) ([][]float32, domain.BatchEmbeddingResult, error) {
	var usage domain.BatchEmbeddingResult
	embeddings := make([][]float32, 0, len(docs))

	for offset := 0; offset < len(docs); offset += p.batchSize {
		end := min(offset+p.batchSize, len(docs))
		texts := make([]string, 0, end-offset)
		for _, d := range docs[offset:end] {
			texts = append(texts, d.Text)
		}

		res, err := domain.EmbedBatch(ctx, p.embedder, texts)
		if err != nil {
			return nil, usage, fmt.Errorf("embed documents %d-%d: %w", offset, end, err)
		}
		for i, vec := range res.Embeddings {
			if len(vec) == 0 {
				return nil, usage, domain.NewMisaligned(len(texts), len(res.Embeddings),
					fmt.Sprintf("empty vector for %s", docs[offset+i].ID))
			}
		}

		embeddings = append(embeddings, res.Embeddings...)
		usage.PromptTokens += res.PromptTokens
		usage.TotalTokens += res.TotalTokens
		if p.progress != nil {
			p.progress(end, len(docs))
		}
	}
	return embeddings, usage, nil
}
