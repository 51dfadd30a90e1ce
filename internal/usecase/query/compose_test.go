package query

import (
	"testing"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

func TestCompose_Empty(t *testing.T) {
	want := "I could not find any relevant information in our product and policy data for this question."
	if got := Compose(nil); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompose_Numbered(t *testing.T) {
	got := Compose([]domain.ScoredDocument{
		{Document: domain.Document{Type: domain.TypeProduct, Text: "Mouse"}, Score: 2},
		{Document: domain.Document{Type: domain.TypePolicy, Text: "Returns"}, Score: 1},
	})
	want := "Here is the information I found based on your question:\n\n" +
		"1. [PRODUCT] Mouse\n\n2. [POLICY] Returns"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
