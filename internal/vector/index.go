package vector

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// DefaultK is the result count used when a caller passes k <= 0.
const DefaultK = 5

// Index is an immutable, ordered set of stored records. Safe for concurrent reads.
type Index struct {
	records []domain.StoredRecord
	dim     int
}

// NewIndex validates that all records share one dimensionality.
func NewIndex(records []domain.StoredRecord) (*Index, error) {
	dim, err := domain.Dimensions(records)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	return &Index{records: slices.Clone(records), dim: dim}, nil
}

// Len returns the number of records.
func (ix *Index) Len() int { return len(ix.records) }

// Dim returns the embedding dimensionality, or 0 for an empty index.
func (ix *Index) Dim() int { return ix.dim }

// Records returns a copy of the indexed records in store order.
func (ix *Index) Records() []domain.StoredRecord { return slices.Clone(ix.records) }

// TopK scores every record against query and returns the k most similar,
// descending, with store order breaking ties. Low and negative scores are kept.
func (ix *Index) TopK(query []float32, k int) ([]domain.ScoredDocument, error) {
	if k <= 0 {
		k = DefaultK
	}
	if len(ix.records) == 0 {
		return []domain.ScoredDocument{}, nil
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("query has %d dimensions, store has %d: %w",
			len(query), ix.dim, domain.ErrVectorDimMismatch)
	}

	scored := make([]domain.ScoredDocument, len(ix.records))
	for i := range ix.records {
		scored[i] = domain.ScoredDocument{
			Document: ix.records[i].Document,
			Score:    CosineSimilarity(query, ix.records[i].Embedding),
		}
	}

	// cmp.Compare orders NaN (zero vectors) below every real score.
	slices.SortStableFunc(scored, func(a, b domain.ScoredDocument) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return scored[:min(k, len(scored))], nil
}
