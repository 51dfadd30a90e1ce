package order

import (
	"context"

	domorder "github.com/kailas-cloud/supportdesk/internal/domain/order"
)

// Reader looks up an order by id.
type Reader interface {
	Get(ctx context.Context, id string) (domorder.Order, error)
}
