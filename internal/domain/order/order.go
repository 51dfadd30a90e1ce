// Package order holds the order record and the return-eligibility rule.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// Order is a row of the order source table.
type Order struct {
	OrderID           string `json:"orderId"`
	ProductName       string `json:"productName"`
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
	TrackingID        string `json:"trackingId,omitempty"`
	CanReturnTill     string `json:"canReturnTill"`
}

// StatusMessage renders the customer-facing status line.
func (o Order) StatusMessage() string {
	parts := []string{
		fmt.Sprintf("Order %s for \"%s\" is currently in status: %s.", o.OrderID, o.ProductName, o.Status),
	}
	if o.EstimatedDelivery != "" {
		parts = append(parts, fmt.Sprintf("The estimated delivery date is %s.", o.EstimatedDelivery))
	}
	if o.TrackingID != "" {
		parts = append(parts, fmt.Sprintf(
			"Tracking ID: %s. You can use this to track your shipment on the courier's website.", o.TrackingID))
	}
	return strings.Join(parts, " ")
}

// Eligible reports whether the order can still be returned on the given date.
// The last day of the window is inclusive.
func (o Order) Eligible(now time.Time) (bool, error) {
	till, err := ParseDate(o.CanReturnTill)
	if err != nil {
		return false, fmt.Errorf("order %s canReturnTill: %w", o.OrderID, err)
	}
	return !now.After(till), nil
}

// ReturnMessage renders the customer-facing eligibility line.
func (o Order) ReturnMessage(eligible bool) string {
	verdict := "no longer eligible"
	if eligible {
		verdict = "still eligible"
	}
	return fmt.Sprintf("The order %s is %s for return. It can be returned till %s.",
		o.OrderID, verdict, o.CanReturnTill)
}

// ParseDate accepts YYYY-MM-DD (midnight UTC) or RFC3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is neither YYYY-MM-DD nor RFC3339: %w", s, domain.ErrInvalidInput)
	}
	return t, nil
}
