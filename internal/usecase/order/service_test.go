package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	domorder "github.com/kailas-cloud/supportdesk/internal/domain/order"
	"github.com/kailas-cloud/supportdesk/internal/repository/source"
)

func newTestService() *Service {
	repo := source.NewOrderRepo([]domorder.Order{
		{
			OrderID: "ORD-1001", ProductName: "Wireless Mouse", Status: "Shipped",
			EstimatedDelivery: "2025-01-10", TrackingID: "TRK123", CanReturnTill: "2025-02-01",
		},
		{OrderID: "ORD-1002", ProductName: "Desk", Status: "Processing", CanReturnTill: "not-a-date"},
	})
	return New(repo).WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	})
}

func TestStatus(t *testing.T) {
	reply, err := newTestService().Status(context.Background(), "ORD-1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(reply.Message, `Order ORD-1001 for "Wireless Mouse" is currently in status: Shipped.`) {
		t.Errorf("unexpected message: %q", reply.Message)
	}
	if !strings.Contains(reply.Message, "Tracking ID: TRK123.") {
		t.Errorf("expected tracking id in message: %q", reply.Message)
	}
}

func TestStatus_Errors(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Status(context.Background(), " "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Status(context.Background(), "ORD-404"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCanReturn(t *testing.T) {
	tests := []struct {
		name        string
		currentDate string
		want        bool
	}{
		{"before window end", "2025-01-15", true},
		{"on the last day", "2025-02-01", true},
		{"after window end", "2025-02-02", false},
		{"clock default", "", false},
	}
	svc := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.CanReturn(context.Background(), "ORD-1001", tt.currentDate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reply.Eligible != tt.want {
				t.Errorf("Eligible = %v, want %v", reply.Eligible, tt.want)
			}
			if reply.CanReturnTill != "2025-02-01" {
				t.Errorf("unexpected canReturnTill %q", reply.CanReturnTill)
			}
		})
	}
}

func TestCanReturn_Message(t *testing.T) {
	reply, err := newTestService().CanReturn(context.Background(), "ORD-1001", "2025-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "The order ORD-1001 is still eligible for return. It can be returned till 2025-02-01."
	if reply.Message != want {
		t.Errorf("got %q, want %q", reply.Message, want)
	}
}

func TestCanReturn_BadDates(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CanReturn(context.Background(), "ORD-1001", "yesterday"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad currentDate: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CanReturn(context.Background(), "ORD-1002", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad stored date: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CanReturn(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing id: expected ErrInvalidInput, got %v", err)
	}
}
