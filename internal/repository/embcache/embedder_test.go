package embcache

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

func TestEmbed_RepeatedQuestionServedFromCache(t *testing.T) {
	inner := &mockEmbedder{
		result: domain.EmbeddingResult{PromptTokens: 4, TotalTokens: 4},
		vecFor: lengthVec,
	}
	ce, _ := newMemoryCachedEmbedder(t, inner)
	ctx := context.Background()

	first, err := ce.Embed(ctx, "return policy")
	if err != nil {
		t.Fatalf("first embed: %v", err)
	}
	second, err := ce.Embed(ctx, "return policy")
	if err != nil {
		t.Fatalf("second embed: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("expected one provider call, got %d", inner.calls)
	}
	if first.TotalTokens != 4 || second.TotalTokens != 0 {
		t.Errorf("tokens: first=%d second=%d, want 4 and 0", first.TotalTokens, second.TotalTokens)
	}
	if second.Embedding[0] != first.Embedding[0] {
		t.Errorf("cached vector %v differs from provider vector %v", second.Embedding, first.Embedding)
	}
}

func TestEmbed_ProviderErrorIsNotCached(t *testing.T) {
	inner := &mockEmbedder{err: domain.ErrProviderUnavailable}
	ce, mem := newMemoryCachedEmbedder(t, inner)

	_, err := ce.Embed(context.Background(), "shipping time")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if mem.Len() != 0 {
		t.Errorf("expected empty cache after failure, got %d entries", mem.Len())
	}
}

func TestBatchEmbed_OnlyMissesReachProvider(t *testing.T) {
	inner := &mockEmbedder{result: domain.EmbeddingResult{TotalTokens: 1}, vecFor: lengthVec}
	ce, _ := newMemoryCachedEmbedder(t, inner)
	ctx := context.Background()

	if _, err := ce.Embed(ctx, "mouse"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	res, err := ce.BatchEmbed(ctx, []string{"desk", "mouse", "keyboard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(inner.batchTexts) != 1 {
		t.Fatalf("expected one batch call, got %d", len(inner.batchTexts))
	}
	if got := inner.batchTexts[0]; len(got) != 2 || got[0] != "desk" || got[1] != "keyboard" {
		t.Errorf("expected misses [desk keyboard], got %v", got)
	}

	want := []float32{4, 5, 8}
	for i, w := range want {
		if res.Embeddings[i][0] != w {
			t.Errorf("embeddings[%d] = %v, want [%v]", i, res.Embeddings[i], w)
		}
	}
	if res.TotalTokens != 2 {
		t.Errorf("expected tokens for misses only, got %d", res.TotalTokens)
	}
}

func TestBatchEmbed_AllHitsSkipProvider(t *testing.T) {
	inner := &mockEmbedder{vecFor: lengthVec}
	ce, _ := newMemoryCachedEmbedder(t, inner)
	ctx := context.Background()
	texts := []string{"a", "bb"}

	if _, err := ce.BatchEmbed(ctx, texts); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	res, err := ce.BatchEmbed(ctx, texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.batchCalls != 1 {
		t.Errorf("expected provider batch only once, got %d", inner.batchCalls)
	}
	if res.Embeddings[1][0] != 2 || res.TotalTokens != 0 {
		t.Errorf("unexpected cached batch: %+v", res)
	}
}

func TestBatchEmbed_ShortProviderResponse(t *testing.T) {
	inner := &mockEmbedder{batchResult: domain.BatchEmbeddingResult{
		Embeddings: [][]float32{{1}},
	}}
	ce, mem := newMemoryCachedEmbedder(t, inner)

	_, err := ce.BatchEmbed(context.Background(), []string{"a", "b"})
	if !errors.Is(err, domain.ErrEmbeddingMisaligned) {
		t.Fatalf("expected ErrEmbeddingMisaligned, got %v", err)
	}
	if mem.Len() != 0 {
		t.Errorf("misaligned vectors must not be cached, got %d entries", mem.Len())
	}
}

func TestBatchEmbed_ProviderError(t *testing.T) {
	inner := &mockEmbedder{batchErr: domain.ErrRateLimited}
	ce, _ := newMemoryCachedEmbedder(t, inner)

	if _, err := ce.BatchEmbed(context.Background(), []string{"a"}); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestBatchEmbed_Empty(t *testing.T) {
	inner := &mockEmbedder{}
	ce, _ := newMemoryCachedEmbedder(t, inner)

	res, err := ce.BatchEmbed(context.Background(), nil)
	if err != nil || len(res.Embeddings) != 0 || inner.batchCalls != 0 {
		t.Errorf("expected no-op for empty input, got %+v, %v, %d calls", res, err, inner.batchCalls)
	}
}

func TestHealthCheck_Delegates(t *testing.T) {
	inner := &mockEmbedder{healthErr: domain.ErrProviderUnavailable}
	ce, _ := newMemoryCachedEmbedder(t, inner)

	if err := ce.HealthCheck(context.Background()); !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("expected inner health error, got %v", err)
	}
}
