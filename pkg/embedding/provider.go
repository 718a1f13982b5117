package embedding

// EmbeddingResponseEmbedding carries the raw vector values.
type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

// EmbeddingResponse wraps a single embedding result.
type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}

// EmbeddingProvider defines the interface for generating text embeddings.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
