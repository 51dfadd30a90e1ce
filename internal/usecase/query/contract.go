package query

import (
	"context"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// Scorer ranks the corpus against query text. k <= 0 means the scorer's default.
type Scorer interface {
	TopK(ctx context.Context, query string, k int) ([]domain.ScoredDocument, error)
}
