package vectorstore

import (
	"context"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// stubEmbedder returns a fixed vector or error and records the last text.
type stubEmbedder struct {
	vec   []float32
	err   error
	calls int
	last  string
}

func (s *stubEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	s.calls++
	s.last = text
	if s.err != nil {
		return domain.EmbeddingResult{}, s.err
	}
	return domain.EmbeddingResult{Embedding: s.vec}, nil
}

// memBackend is an in-memory Backend.
type memBackend struct {
	records []domain.StoredRecord
	loadErr error
	saves   int
}

func (m *memBackend) Load(_ context.Context) ([]domain.StoredRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *memBackend) Save(_ context.Context, records []domain.StoredRecord) error {
	m.saves++
	m.records = records
	return nil
}

func sampleRecords() []domain.StoredRecord {
	return []domain.StoredRecord{
		{
			Document:  domain.Document{ID: "product-1", Type: domain.TypeProduct, Text: "Product: Mouse\nDescription: Blue wireless mouse"},
			Embedding: []float32{0.1, 0.9, 0},
		},
		{
			Document:  domain.Document{ID: "policy-returns", Type: domain.TypePolicy, Text: "Policy: Returns\nReturns accepted within 30 days"},
			Embedding: []float32{0.8, 0.1, 0.1},
		},
		{
			Document:  domain.Document{ID: "policy-1", Type: domain.TypePolicy, Text: "Policy: Shipping\n\"Fast\" shipping"},
			Embedding: []float32{-0.5, -0.5, 0.25},
		},
	}
}
