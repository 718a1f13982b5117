package answer

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"clinic-assistant-be/pkg/llm"
	"clinic-assistant-be/pkg/store"
)

type fakeLLM struct {
	response string
	err      error
	prompt   string
}

func (f *fakeLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func newTestGenerator(resp string, err error) (*Generator, *fakeLLM) {
	f := &fakeLLM{response: resp, err: err}
	return NewGenerator(f, log.New(os.Stderr, "", 0)), f
}

func snippet(text string) store.Snippet {
	return store.Snippet{Text: text, Score: 0.9, Source: "handbook.pdf"}
}

func TestAnswerNoSnippets(t *testing.T) {
	g, _ := newTestGenerator("ignored", nil)

	if got := g.Answer(context.Background(), "visiting hours", nil); got != GenericNoResult {
		t.Fatalf("expected generic refusal, got %q", got)
	}
	if got := g.Answer(context.Background(), "what is the full form of ECG", nil); got != KnowledgeNoResult {
		t.Fatalf("expected knowledge refusal, got %q", got)
	}
}

func TestAnswerCleansModelOutput(t *testing.T) {
	g, _ := newTestGenerator("Answer:   Visiting hours are\n9am   to 5pm", nil)

	got := g.Answer(context.Background(), "visiting hours", []store.Snippet{snippet("Visiting hours are 9am to 5pm.")})

	if got != "Visiting hours are 9am to 5pm." {
		t.Fatalf("unexpected answer: %q", got)
	}
}

func TestAnswerReplacesNoInfoMarker(t *testing.T) {
	g, _ := newTestGenerator("Unfortunately, I don't have information about parking.", nil)

	got := g.Answer(context.Background(), "parking rules", []store.Snippet{snippet("Visiting hours are 9am to 5pm.")})

	if got != GenericNoResult {
		t.Fatalf("expected canonical refusal, got %q", got)
	}
}

func TestAnswerContextIsBounded(t *testing.T) {
	g, f := newTestGenerator("Short answer.", nil)

	long := strings.Repeat("x", 900)
	snippets := []store.Snippet{snippet(long), snippet(long), snippet(long), snippet(long)}
	g.Answer(context.Background(), "anything", snippets)

	if strings.Count(f.prompt, "---") > 3 {
		t.Fatalf("more than 3 snippets in prompt")
	}
	if strings.Count(f.prompt, "x") > 1500 {
		t.Fatalf("context exceeds 1500 chars: %d", strings.Count(f.prompt, "x"))
	}
}

func TestExtractiveFallbackOnModelFailure(t *testing.T) {
	g, _ := newTestGenerator("", errors.New("connection refused"))

	text := strings.Repeat("padding before the key sentence. ", 10) +
		"The pharmacy window closes at 6pm on weekdays." +
		strings.Repeat(" trailing filler text here.", 10)
	got := g.Answer(context.Background(), "pharmacy closing time", []store.Snippet{snippet(text)})

	if !strings.Contains(got, "pharmacy") {
		t.Fatalf("fallback passage misses the query term: %q", got)
	}
	if len(got) > 320 {
		t.Fatalf("fallback passage too long: %d chars", len(got))
	}
}

func TestExtractiveFallbackRefusesKnowledgeQueries(t *testing.T) {
	g, _ := newTestGenerator("", errors.New("down"))

	got := g.Answer(context.Background(), "explain how insulin works", []store.Snippet{snippet("Insulin regulates blood sugar.")})

	if got != KnowledgeNoResult {
		t.Fatalf("expected knowledge refusal, got %q", got)
	}
}

func TestContainsNoInfoMarker(t *testing.T) {
	if !ContainsNoInfoMarker("The context does not contain that detail.") {
		t.Fatal("marker not detected")
	}
	if ContainsNoInfoMarker("Visiting hours are 9am to 5pm.") {
		t.Fatal("false positive on a normal answer")
	}
}
