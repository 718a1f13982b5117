package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortTextSingleChunk(t *testing.T) {
	chunks := SplitText("A short note.", 800)
	if len(chunks) != 1 || chunks[0] != "A short note." {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestSplitTextBreaksAtSentences(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("This sentence has a fixed length for the test. ", 30))
	chunks := SplitText(text, 200)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !strings.HasSuffix(c, ".") {
			t.Errorf("chunk %d does not end at a sentence boundary: %q", i, c)
		}
		if len(c) > 200 {
			t.Errorf("chunk %d exceeds limit: %d chars", i, len(c))
		}
	}
}

func TestSplitTextKeepsDecimalsTogether(t *testing.T) {
	chunks := SplitText("The fee is 12.50 for a visit. Second sentence here.", 30)

	for _, c := range chunks {
		if strings.HasSuffix(c, "12.") {
			t.Fatalf("decimal split across chunks: %q", c)
		}
	}
}

func TestSplitTextEmpty(t *testing.T) {
	if chunks := SplitText("   ", 800); chunks != nil {
		t.Fatalf("expected nil for blank input, got %v", chunks)
	}
}
