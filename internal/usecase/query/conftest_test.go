package query

import (
	"context"
	"os"
	"testing"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/lexical"
	"github.com/kailas-cloud/supportdesk/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterRetrievalMetrics()
	os.Exit(m.Run())
}

// stubScorer returns fixed results or an error, optionally waiting for ctx.
type stubScorer struct {
	results []domain.ScoredDocument
	err     error
	block   bool
	calls   int
	lastK   int
}

func (s *stubScorer) TopK(ctx context.Context, _ string, k int) ([]domain.ScoredDocument, error) {
	s.calls++
	s.lastK = k
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.results, s.err
}

func sampleCorpus() *lexical.Scorer {
	return lexical.NewScorer([]domain.Document{
		{ID: "product-1", Type: domain.TypeProduct, Text: "Blue wireless mouse electronics"},
		{ID: "policy-1", Type: domain.TypePolicy, Text: "Returns accepted within 30 days"},
	})
}
