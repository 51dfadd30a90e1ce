package chi

import domorder "github.com/kailas-cloud/supportdesk/internal/domain/order"

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// RetrievedDoc is one ranked document in an answer.
type RetrievedDoc struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// AskResponse is the body of a successful POST /ask.
type AskResponse struct {
	Answer        string         `json:"answer"`
	RetrievedDocs []RetrievedDoc `json:"retrievedDocs"`
	Strategy      string         `json:"strategy"`
}

// OrderRequest is the body of POST /order-status.
type OrderRequest struct {
	OrderID string `json:"orderId"`
}

// CanReturnRequest is the body of POST /can-return.
type CanReturnRequest struct {
	OrderID     string `json:"orderId"`
	CurrentDate string `json:"currentDate,omitempty"`
}

// OrderStatusResponse is the body of a successful POST /order-status.
type OrderStatusResponse struct {
	Order   domorder.Order `json:"order"`
	Message string         `json:"message"`
}

// CanReturnResponse is the body of a successful POST /can-return.
type CanReturnResponse struct {
	Eligible bool   `json:"eligible"`
	Message  string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Strategy  string            `json:"strategy,omitempty"`
	Documents int               `json:"documents"`
	Checks    map[string]string `json:"checks"`
}
