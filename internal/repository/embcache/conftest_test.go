package embcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/db"
	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// mockEmbedder returns result for Embed and, for batches, one vector per text
// from vecFor (or result.Embedding). It records what reached the provider.
type mockEmbedder struct {
	result      domain.EmbeddingResult
	err         error
	vecFor      func(text string) []float32
	batchResult domain.BatchEmbeddingResult
	batchErr    error

	calls      int
	batchCalls int
	batchTexts [][]string
	healthErr  error
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	res := m.result
	if m.vecFor != nil {
		res.Embedding = m.vecFor(text)
	}
	return res, nil
}

func (m *mockEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	m.batchCalls++
	m.batchTexts = append(m.batchTexts, append([]string(nil), texts...))
	if m.batchErr != nil {
		return domain.BatchEmbeddingResult{}, m.batchErr
	}
	if m.batchResult.Embeddings != nil {
		return m.batchResult, nil
	}
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = m.result.Embedding
		if m.vecFor != nil {
			embeddings[i] = m.vecFor(text)
		}
	}
	return domain.BatchEmbeddingResult{
		Embeddings:   embeddings,
		PromptTokens: m.result.PromptTokens * len(texts),
		TotalTokens:  m.result.TotalTokens * len(texts),
	}, nil
}

func (m *mockEmbedder) HealthCheck(_ context.Context) error { return m.healthErr }

// lengthVec embeds a text as [len(text)].
func lengthVec(text string) []float32 { return []float32{float32(len(text))} }

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn    func(ctx context.Context, key string) ([]byte, error)
	setFn    func(ctx context.Context, key string, value []byte) error
	setTTLFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setTTLFn != nil {
		return m.setTTLFn(ctx, key, value, ttl)
	}
	return nil
}

func newMemoryCachedEmbedder(t *testing.T, inner *mockEmbedder) (*CachedEmbedder, *MemoryStore) {
	t.Helper()
	mem := NewMemoryStore(time.Hour)
	return New(inner, mem, Config{Model: "text-embedding-3-small"}, nil, zap.NewNop()), mem
}

// mockBatchKVStore adds the bulk read used by BatchEmbed.
type mockBatchKVStore struct {
	mockKVStore
	getManyFn    func(ctx context.Context, keys []string) ([][]byte, error)
	getManyCalls int
}

func (m *mockBatchKVStore) GetMany(ctx context.Context, keys []string) ([][]byte, error) {
	m.getManyCalls++
	return m.getManyFn(ctx, keys)
}
