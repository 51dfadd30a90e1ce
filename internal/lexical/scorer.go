package lexical

import (
	"context"
	"slices"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// DefaultK is the result count used when a caller passes k <= 0.
const DefaultK = 5

type entry struct {
	doc    domain.Document
	tokens map[string]struct{}
}

// Scorer ranks an immutable corpus by token overlap with the query.
// Safe for concurrent use.
type Scorer struct {
	entries []entry
}

// NewScorer tokenizes every document once. The corpus order is the tie-break order.
func NewScorer(docs []domain.Document) *Scorer {
	entries := make([]entry, len(docs))
	for i, d := range docs {
		entries[i] = entry{doc: d, tokens: tokenSet(Tokenize(d.Text))}
	}
	return &Scorer{entries: entries}
}

// Len returns the corpus size.
func (s *Scorer) Len() int { return len(s.entries) }

// Score counts the query tokens present in the document's token set.
// Repeated query tokens count once per occurrence; repeated document tokens do not add.
func Score(doc domain.Document, query string) int {
	return overlap(tokenSet(Tokenize(doc.Text)), Tokenize(query))
}

// TopK scores every document, keeps those with a positive score, and returns
// the k best in descending order. Equal scores keep corpus order.
func (s *Scorer) TopK(_ context.Context, query string, k int) ([]domain.ScoredDocument, error) {
	if k <= 0 {
		k = DefaultK
	}
	qTokens := Tokenize(query)

	scored := make([]domain.ScoredDocument, 0, len(s.entries))
	for _, e := range s.entries {
		scored = append(scored, domain.ScoredDocument{
			Document: e.doc,
			Score:    float64(overlap(e.tokens, qTokens)),
		})
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredDocument) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	results := make([]domain.ScoredDocument, 0, k)
	for _, sd := range scored {
		if sd.Score <= 0 {
			break
		}
		results = append(results, sd)
		if len(results) == k {
			break
		}
	}
	return results, nil
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func overlap(docTokens map[string]struct{}, queryTokens []string) int {
	score := 0
	for _, t := range queryTokens {
		if _, ok := docTokens[t]; ok {
			score++
		}
	}
	return score
}
