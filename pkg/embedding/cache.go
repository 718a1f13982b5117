package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProvider wraps an EmbeddingProvider with a Redis read-through cache.
// A nil client disables caching entirely, so callers can wire it
// unconditionally and let configuration decide.
type CachedProvider struct {
	inner EmbeddingProvider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProvider(inner EmbeddingProvider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CachedProvider{inner: inner, rdb: rdb, ttl: ttl}
}

func (p *CachedProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	if p.rdb == nil {
		return p.inner.Generate(text, taskType)
	}

	ctx := context.Background()
	key := cacheKey(text, taskType)

	if raw, err := p.rdb.Get(ctx, key).Bytes(); err == nil {
		var values []float32
		if err := json.Unmarshal(raw, &values); err == nil && len(values) > 0 {
			return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: values}}, nil
		}
	}

	resp, err := p.inner.Generate(text, taskType)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(resp.Embedding.Values); err == nil {
		p.rdb.Set(ctx, key, raw, p.ttl)
	}
	return resp, nil
}

func cacheKey(text, taskType string) string {
	sum := sha256.Sum256([]byte(taskType + "\x00" + text))
	return "embed:" + hex.EncodeToString(sum[:])
}
