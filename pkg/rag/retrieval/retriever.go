// Package retrieval fetches the document snippets most similar to a query.
package retrieval

import (
	"context"
	"log"

	"clinic-assistant-be/pkg/embedding"
	"clinic-assistant-be/pkg/store"
)

// TopK is how many snippets a retrieval returns at most.
const TopK = 5

// Searcher abstracts the vector index the retriever reads from.
type Searcher interface {
	SearchSimilar(ctx context.Context, userId string, vector []float32, limit int) ([]store.Snippet, error)
}

// Retriever embeds the query and runs a similarity search over the user's
// ingested documents. An embedding failure degrades to a deterministic
// fallback vector; a search failure yields no snippets.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	searcher Searcher
	dim      int
	logger   *log.Logger
}

// NewRetriever creates a new snippet retriever
func NewRetriever(embedder embedding.EmbeddingProvider, searcher Searcher, dim int, logger *log.Logger) *Retriever {
	return &Retriever{
		embedder: embedder,
		searcher: searcher,
		dim:      dim,
		logger:   logger,
	}
}

// Retrieve returns up to TopK snippets ranked by similarity to the query.
func (r *Retriever) Retrieve(ctx context.Context, userId string, query string) []store.Snippet {
	vector := r.embedQuery(query)

	snippets, err := r.searcher.SearchSimilar(ctx, userId, vector, TopK)
	if err != nil {
		r.logger.Printf("[ERROR] Similarity search failed: %v", err)
		return nil
	}

	r.logger.Printf("[RETRIEVE] query=%q snippets=%d", query, len(snippets))
	return snippets
}

func (r *Retriever) embedQuery(query string) []float32 {
	resp, err := r.embedder.Generate(query, "RETRIEVAL_QUERY")
	if err != nil || len(resp.Embedding.Values) == 0 {
		r.logger.Printf("[WARN] Query embedding failed, using fallback vector: %v", err)
		return embedding.FallbackVector(query, r.dim)
	}
	return resp.Embedding.Values
}
