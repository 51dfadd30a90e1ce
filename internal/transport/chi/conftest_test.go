package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/domain"
	domorder "github.com/kailas-cloud/supportdesk/internal/domain/order"
	"github.com/kailas-cloud/supportdesk/internal/lexical"
	"github.com/kailas-cloud/supportdesk/internal/repository/source"
	healthuc "github.com/kailas-cloud/supportdesk/internal/usecase/health"
	orderuc "github.com/kailas-cloud/supportdesk/internal/usecase/order"
	queryuc "github.com/kailas-cloud/supportdesk/internal/usecase/query"
)

// failingScorer always returns err.
type failingScorer struct {
	err error
}

func (f failingScorer) TopK(_ context.Context, _ string, _ int) ([]domain.ScoredDocument, error) {
	return nil, f.err
}

// fixedScorer returns docs for every query.
type fixedScorer struct {
	docs []domain.ScoredDocument
}

func (f fixedScorer) TopK(_ context.Context, _ string, _ int) ([]domain.ScoredDocument, error) {
	return f.docs, nil
}

type mockEmbeddingChecker struct {
	err error
}

func (m *mockEmbeddingChecker) HealthCheck(_ context.Context) error { return m.err }

type testEnv struct {
	vector    queryuc.Scorer
	fallback  bool
	apiKeys   []string
	staticDir string
	embedding healthuc.EmbeddingChecker
}

func newTestRouter(t *testing.T, env testEnv) http.Handler {
	t.Helper()
	corpus := lexical.NewScorer([]domain.Document{
		{ID: "product-1", Type: domain.TypeProduct, Text: "Blue wireless mouse electronics"},
		{ID: "policy-1", Type: domain.TypePolicy, Text: "Returns accepted within 30 days"},
	})
	query, err := queryuc.New(corpus, env.vector, queryuc.Config{FallbackToLexical: env.fallback}, zap.NewNop())
	if err != nil {
		t.Fatalf("query service: %v", err)
	}
	orders := orderuc.New(source.NewOrderRepo([]domorder.Order{{
		OrderID: "ORD-1", ProductName: "Mouse", Status: "Shipped", CanReturnTill: "2025-02-01",
	}}))
	health := healthuc.New(env.embedding).WithCorpus(string(query.Strategy()), corpus.Len())

	srv := NewServer(query, orders, health, zap.NewNop())
	return NewRouter(srv, RouterConfig{APIKeys: env.apiKeys, StaticDir: env.staticDir}, zap.NewNop())
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
