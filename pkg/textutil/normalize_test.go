package textutil

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "What's up, doc?!", "whats up doc"},
		{"collapses whitespace", "  too   many\tspaces \n here ", "too many spaces here"},
		{"keeps digits", "Slot at 5:31 PM", "slot at 531 pm"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsKnowledgeQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"what is the full form of XYZ", true},
		{"explain photosynthesis", true},
		{"tell me about doctor Anindya", true},
		{"who is the director", true},
		{"how does this work", true},
		{"show me more stuff", false},
		{"monday slots", false},
		{"hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := IsKnowledgeQuery(tt.query); got != tt.want {
				t.Errorf("IsKnowledgeQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
