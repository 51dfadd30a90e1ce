package query

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

const (
	noResultsAnswer = "I could not find any relevant information in our product and policy data for this question."
	answerPreamble  = "Here is the information I found based on your question:\n\n"
)

// Compose renders ranked documents as the customer-facing answer text.
func Compose(results []domain.ScoredDocument) string {
	if len(results) == 0 {
		return noResultsAnswer
	}
	entries := make([]string, len(results))
	for i, r := range results {
		entries[i] = fmt.Sprintf("%d. [%s] %s", i+1, strings.ToUpper(string(r.Type)), r.Text)
	}
	return answerPreamble + strings.Join(entries, "\n\n")
}
