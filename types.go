package supportdesk

import "time"

// Document is a retrieved product or policy with its relevance score.
type Document struct {
	ID    string
	Type  string
	Text  string
	Score float64
}

// Answer is the composed reply to a question.
type Answer struct {
	Text     string
	Strategy string // lexical, vector or lexical_fallback
	Docs     []Document
}

// Order is a customer order as stored in orders.json.
type Order struct {
	ID                string
	ProductName       string
	Status            string
	EstimatedDelivery string
	TrackingID        string
	CanReturnTill     string
}

// OrderStatus is an order with its human-readable status line.
type OrderStatus struct {
	Order   Order
	Message string
}

// ReturnCheck is the outcome of a return window check.
type ReturnCheck struct {
	OrderID       string
	Eligible      bool
	CanReturnTill string
	Message       string
}

// IngestReport summarizes one ingestion run.
type IngestReport struct {
	Documents    int
	Dimensions   int
	PromptTokens int
	TotalTokens  int
	Duration     time.Duration
}

// Health is the readiness of the client's dependencies.
type Health struct {
	Status    string
	Strategy  string
	Documents int
	Checks    map[string]string
}
