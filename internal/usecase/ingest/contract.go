package ingest

import (
	"context"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/domain/corpus"
)

// Sources reads the product and policy tables.
type Sources interface {
	Products() ([]corpus.Product, error)
	Policies() ([]corpus.Policy, error)
}

// RecordSaver replaces the persisted store with a full record set.
type RecordSaver interface {
	Save(ctx context.Context, records []domain.StoredRecord) error
}
