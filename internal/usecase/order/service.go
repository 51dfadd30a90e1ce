// Package order answers order-status and return-eligibility questions.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	domorder "github.com/kailas-cloud/supportdesk/internal/domain/order"
)

// StatusReply is the outcome of a status lookup.
type StatusReply struct {
	Order   domorder.Order
	Message string
}

// ReturnReply is the outcome of a return-eligibility check.
type ReturnReply struct {
	OrderID       string
	Eligible      bool
	CanReturnTill string
	Message       string
}

// Service wraps the order table with the customer-facing rules.
type Service struct {
	orders Reader
	now    func() time.Time
}

// New creates an order service.
func New(orders Reader) *Service {
	return &Service{orders: orders, now: time.Now}
}

// WithClock overrides the clock used when no current date is given.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Status returns the order and its status message.
func (s *Service) Status(ctx context.Context, id string) (StatusReply, error) {
	o, err := s.get(ctx, id)
	if err != nil {
		return StatusReply{}, err
	}
	return StatusReply{Order: o, Message: o.StatusMessage()}, nil
}

// CanReturn checks the return window against currentDate, or the clock when it is empty.
func (s *Service) CanReturn(ctx context.Context, id, currentDate string) (ReturnReply, error) {
	o, err := s.get(ctx, id)
	if err != nil {
		return ReturnReply{}, err
	}

	now := s.now()
	if strings.TrimSpace(currentDate) != "" {
		if now, err = domorder.ParseDate(currentDate); err != nil {
			return ReturnReply{}, fmt.Errorf("currentDate: %w", err)
		}
	}

	eligible, err := o.Eligible(now)
	if err != nil {
		return ReturnReply{}, err //nolint:wrapcheck // already carries the order id
	}
	return ReturnReply{
		OrderID:       o.OrderID,
		Eligible:      eligible,
		CanReturnTill: o.CanReturnTill,
		Message:       o.ReturnMessage(eligible),
	}, nil
}

func (s *Service) get(ctx context.Context, id string) (domorder.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domorder.Order{}, fmt.Errorf("orderId is required: %w", domain.ErrInvalidInput)
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}
