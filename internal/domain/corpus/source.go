package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SourceID is a source-table identifier that may be encoded as a JSON string or number.
type SourceID string

// UnmarshalJSON accepts "abc", 42 and null.
func (id *SourceID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("source id: %w", err)
		}
		*id = SourceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("source id must be a string or number: %w", err)
	}
	*id = SourceID(n.String())
	return nil
}

// Product is a row of the product source table.
type Product struct {
	ID          SourceID    `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       json.Number `json:"price"`
}

// Policy is a row of the policy source table. ID is optional.
type Policy struct {
	ID      SourceID `json:"id,omitempty"`
	Title   string   `json:"title"`
	Text    string   `json:"text,omitempty"`
	Details string   `json:"details,omitempty"`
}

// Body returns the policy text, falling back to details.
func (p Policy) Body() string {
	if p.Text != "" {
		return p.Text
	}
	return p.Details
}
