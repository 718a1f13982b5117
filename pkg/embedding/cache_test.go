package embedding

import (
	"errors"
	"testing"
)

type staticProvider struct {
	values []float32
	err    error
	calls  int
}

func (p *staticProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: p.values}}, nil
}

func TestCachedProviderNilClientPassesThrough(t *testing.T) {
	inner := &staticProvider{values: []float32{0.1, 0.2, 0.3}}
	p := NewCachedProvider(inner, nil, 0)

	resp, err := p.Generate("hello", "RETRIEVAL_QUERY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Embedding.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(resp.Embedding.Values))
	}
	if inner.calls != 1 {
		t.Fatalf("expected exactly one inner call, got %d", inner.calls)
	}
}

func TestCachedProviderPropagatesInnerError(t *testing.T) {
	inner := &staticProvider{err: errors.New("model unavailable")}
	p := NewCachedProvider(inner, nil, 0)

	if _, err := p.Generate("hello", "RETRIEVAL_QUERY"); err == nil {
		t.Fatal("expected error from inner provider")
	}
}

func TestCacheKeySeparatesTaskTypes(t *testing.T) {
	if cacheKey("text", "RETRIEVAL_QUERY") == cacheKey("text", "RETRIEVAL_DOCUMENT") {
		t.Fatal("task type must be part of the cache key")
	}
}
