package source

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	"github.com/kailas-cloud/supportdesk/internal/domain/order"
)

// OrderRepo is a read-only, in-memory order table keyed by order id.
type OrderRepo struct {
	byID map[string]order.Order
}

// NewOrderRepo indexes orders. On duplicate ids the first row wins.
func NewOrderRepo(orders []order.Order) *OrderRepo {
	byID := make(map[string]order.Order, len(orders))
	for _, o := range orders {
		if _, dup := byID[o.OrderID]; !dup {
			byID[o.OrderID] = o
		}
	}
	return &OrderRepo{byID: byID}
}

// Get returns the order with the given id or domain.ErrNotFound.
func (r *OrderRepo) Get(_ context.Context, id string) (order.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return order.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return o, nil
}

// Len returns the number of orders.
func (r *OrderRepo) Len() int { return len(r.byID) }
