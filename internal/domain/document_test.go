package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDocumentID(t *testing.T) {
	tests := []struct {
		typ  DocumentType
		id   string
		want string
	}{
		{TypeProduct, "1", "product-1"},
		{TypePolicy, "0", "policy-0"},
		{TypePolicy, "returns", "policy-returns"},
	}
	for _, tt := range tests {
		if got := DocumentID(tt.typ, tt.id); got != tt.want {
			t.Errorf("DocumentID(%q, %q) = %q, want %q", tt.typ, tt.id, got, tt.want)
		}
	}
}

func TestDocumentType_Valid(t *testing.T) {
	if !TypeProduct.Valid() || !TypePolicy.Valid() {
		t.Error("expected product and policy to be valid")
	}
	if DocumentType("faq").Valid() {
		t.Error("expected unknown type to be invalid")
	}
}

func TestStoredRecord_JSONShape(t *testing.T) {
	rec := StoredRecord{
		Document:  Document{ID: "product-1", Type: TypeProduct, Text: "mouse"},
		Embedding: []float32{0.5, -1},
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"product-1","type":"product","text":"mouse","embedding":[0.5,-1]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestDimensions(t *testing.T) {
	dim, err := Dimensions(nil)
	if err != nil || dim != 0 {
		t.Fatalf("empty set: got (%d, %v), want (0, nil)", dim, err)
	}

	uniform := []StoredRecord{
		{Document: Document{ID: "a"}, Embedding: []float32{1, 2, 3}},
		{Document: Document{ID: "b"}, Embedding: []float32{4, 5, 6}},
	}
	dim, err = Dimensions(uniform)
	if err != nil || dim != 3 {
		t.Fatalf("uniform set: got (%d, %v), want (3, nil)", dim, err)
	}

	mixed := append(uniform, StoredRecord{Document: Document{ID: "c"}, Embedding: []float32{1}})
	if _, err := Dimensions(mixed); !errors.Is(err, ErrVectorDimMismatch) {
		t.Errorf("mixed set: expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", ErrRateLimited, true},
		{"unavailable wrapped", errors.Join(errors.New("dial"), ErrProviderUnavailable), true},
		{"provider error", ErrEmbeddingProviderError, false},
		{"misaligned", NewMisaligned(2, 1, ""), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMisalignedError(t *testing.T) {
	err := NewMisaligned(3, 2, "")
	if !errors.Is(err, ErrEmbeddingMisaligned) {
		t.Fatalf("expected errors.Is ErrEmbeddingMisaligned")
	}
	var me *MisalignedError
	if !errors.As(err, &me) || me.Want != 3 || me.Got != 2 {
		t.Errorf("unexpected MisalignedError: %+v", me)
	}
}
