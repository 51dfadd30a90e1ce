package ingest

import (
	"context"
	"encoding/json"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/domain/corpus"
)

type stubSources struct {
	products    []corpus.Product
	policies    []corpus.Policy
	productsErr error
	policiesErr error
}

func (s *stubSources) Products() ([]corpus.Product, error) { return s.products, s.productsErr }
func (s *stubSources) Policies() ([]corpus.Policy, error)  { return s.policies, s.policiesErr }

// batchEmbedder returns one vector per text, shaped by vecFn.
type batchEmbedder struct {
	vecFn func(i int, text string) []float32
	err   error
	// drop removes the last vector of every response.
	drop  bool
	calls [][]string
}

func (b *batchEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	if b.err != nil {
		return domain.EmbeddingResult{}, b.err
	}
	return domain.EmbeddingResult{Embedding: b.vecFn(0, text)}, nil
}

func (b *batchEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	b.calls = append(b.calls, texts)
	if b.err != nil {
		return domain.BatchEmbeddingResult{}, b.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = b.vecFn(i, t)
	}
	if b.drop && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return domain.BatchEmbeddingResult{Embeddings: out, PromptTokens: len(texts), TotalTokens: len(texts)}, nil
}

type recordingSaver struct {
	saved [][]domain.StoredRecord
	err   error
}

func (r *recordingSaver) Save(_ context.Context, records []domain.StoredRecord) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, records)
	return nil
}

func fixedVec(_ int, _ string) []float32 { return []float32{1, 0} }

func sampleSources() *stubSources {
	return &stubSources{
		products: []corpus.Product{
			{ID: "1", Name: "Mouse", Description: "Blue wireless mouse", Category: "electronics", Price: json.Number("19.99")},
			{ID: "2", Name: "Desk", Description: "Standing desk", Category: "furniture"},
		},
		policies: []corpus.Policy{
			{ID: "returns", Title: "Returns", Text: "Returns accepted within 30 days"},
			{Title: "Shipping", Details: "Ships in 2 days"},
		},
	}
}
