package embedding

import "fmt"

// NewProvider selects an embedding backend by name, mirroring the LLM
// provider factory.
func NewProvider(providerType, baseURL, modelName string) (EmbeddingProvider, error) {
	switch providerType {
	case "ollama":
		return NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
