// Package corpus turns product and policy source rows into retrievable documents.
package corpus

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// Template renders document text for a source row.
type Template interface {
	Product(p Product) string
	Policy(p Policy) string
}

type onlineTemplate struct{}

func (onlineTemplate) Product(p Product) string {
	return fmt.Sprintf("Product name: %s. Description: %s. Category: %s. Price: %s",
		p.Name, p.Description, p.Category, p.Price)
}

func (onlineTemplate) Policy(p Policy) string {
	return fmt.Sprintf("Policy title: %s. Details: %s", p.Title, p.Body())
}

type embeddingTemplate struct{}

func (embeddingTemplate) Product(p Product) string {
	return fmt.Sprintf("Product: %s\nDescription: %s\nCategory: %s", p.Name, p.Description, p.Category)
}

func (embeddingTemplate) Policy(p Policy) string {
	return fmt.Sprintf("Policy: %s\n%s", p.Title, p.Body())
}

var (
	// OnlineTemplate is the single-line template used by the in-process lexical corpus.
	OnlineTemplate Template = onlineTemplate{}
	// EmbeddingTemplate is the multi-line template used when building the vector store.
	EmbeddingTemplate Template = embeddingTemplate{}
)

// Build converts source rows into documents: all products first, then all policies,
// each in input order. A policy without an id is keyed by its position in policies.
func Build(tmpl Template, products []Product, policies []Policy) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(products)+len(policies))

	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has no id: %w", i, domain.ErrInvalidInput)
		}
		docs = append(docs, domain.Document{
			ID:   domain.DocumentID(domain.TypeProduct, string(p.ID)),
			Type: domain.TypeProduct,
			Text: tmpl.Product(p),
		})
	}

	for i, p := range policies {
		id := string(p.ID)
		if id == "" {
			id = strconv.Itoa(i)
		}
		docs = append(docs, domain.Document{
			ID:   domain.DocumentID(domain.TypePolicy, id),
			Type: domain.TypePolicy,
			Text: tmpl.Policy(p),
		})
	}

	return docs, nil
}
