package embedding

import "testing"

func TestNewProvider(t *testing.T) {
	p, err := NewProvider("ollama", "http://localhost:11434", "nomic-embed-text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a provider")
	}

	if _, err := NewProvider("acme", "", ""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
