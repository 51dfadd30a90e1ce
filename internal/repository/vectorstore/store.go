// Package vectorstore persists embedded documents and ranks them against query vectors.
package vectorstore

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/vector"
)

// Backend loads and replaces the full record set.
type Backend interface {
	Load(ctx context.Context) ([]domain.StoredRecord, error)
	Save(ctx context.Context, records []domain.StoredRecord) error
}

// VectorStore combines a persistence backend with the embedder used for query text.
type VectorStore struct {
	backend  Backend
	embedder domain.Embedder
}

// New creates a vector store. embedder may be nil for write-only or offline use.
func New(backend Backend, embedder domain.Embedder) *VectorStore {
	return &VectorStore{backend: backend, embedder: embedder}
}

// Load returns every persisted record in store order.
func (s *VectorStore) Load(ctx context.Context) ([]domain.StoredRecord, error) {
	records, err := s.backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return records, nil
}

// Save replaces the persisted store with records. Nothing is merged.
func (s *VectorStore) Save(ctx context.Context, records []domain.StoredRecord) error {
	if _, err := domain.Dimensions(records); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	if err := s.backend.Save(ctx, records); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

// Embed vectorizes a single text with the configured embedder.
func (s *VectorStore) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.embedder == nil {
		return nil, fmt.Errorf("no embedder configured: %w", domain.ErrProviderUnavailable)
	}
	res, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(res.Embedding) == 0 {
		return nil, domain.NewMisaligned(1, 0, "empty query embedding")
	}
	return res.Embedding, nil
}

// TopK loads the store and returns the k records most similar to queryVector.
// k <= 0 means vector.DefaultK.
func (s *VectorStore) TopK(ctx context.Context, queryVector []float32, k int) ([]domain.ScoredDocument, error) {
	ix, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ix.TopK(queryVector, k) //nolint:wrapcheck // sentinel errors
}

// Snapshot loads the store into an immutable in-memory index.
func (s *VectorStore) Snapshot(ctx context.Context) (*vector.Index, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	ix, err := vector.NewIndex(records)
	if err != nil {
		return nil, fmt.Errorf("index store: %w", err)
	}
	return ix, nil
}

// Scorer embeds query text and ranks it against a fixed index snapshot.
type Scorer struct {
	store *VectorStore
	index *vector.Index
}

// NewScorer binds a snapshot to the store's embedder.
func NewScorer(store *VectorStore, index *vector.Index) *Scorer {
	return &Scorer{store: store, index: index}
}

// Len returns the number of indexed records.
func (s *Scorer) Len() int { return s.index.Len() }

// TopK embeds query and returns the k nearest records, without score filtering.
func (s *Scorer) TopK(ctx context.Context, query string, k int) ([]domain.ScoredDocument, error) {
	if s.index.Len() == 0 {
		return []domain.ScoredDocument{}, nil
	}
	vec, err := s.store.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.index.TopK(vec, k) //nolint:wrapcheck // sentinel errors
}
