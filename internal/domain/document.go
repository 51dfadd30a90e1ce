package domain

import "fmt"

// DocumentType is the kind of source record a Document was built from.
type DocumentType string

const (
	// TypeProduct is a document built from a product record.
	TypeProduct DocumentType = "product"
	// TypePolicy is a document built from a policy record.
	TypePolicy DocumentType = "policy"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	return t == TypeProduct || t == TypePolicy
}

// Document is the unit of retrieval. Text is built once and never mutated.
type Document struct {
	ID   string       `json:"id"`
	Type DocumentType `json:"type"`
	Text string       `json:"text"`
}

// DocumentID formats the globally unique "<type>-<sourceId>" identifier.
func DocumentID(t DocumentType, sourceID string) string {
	return fmt.Sprintf("%s-%s", t, sourceID)
}

// StoredRecord is a Document paired with its embedding, as persisted.
type StoredRecord struct {
	Document
	Embedding []float32 `json:"embedding"`
}

// ScoredDocument is a Document with a per-query relevance score. Never persisted.
type ScoredDocument struct {
	Document
	Score float64 `json:"score"`
}

// Dimensions returns the dimensionality of a record set, or an error if it is not uniform.
// An empty set has dimensionality 0.
func Dimensions(records []StoredRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	dim := len(records[0].Embedding)
	for i := range records {
		if len(records[i].Embedding) != dim {
			return 0, fmt.Errorf("record %q has %d dimensions, expected %d: %w",
				records[i].ID, len(records[i].Embedding), dim, ErrVectorDimMismatch)
		}
	}
	return dim, nil
}
