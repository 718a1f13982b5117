// Package answer turns retrieved snippets into a grounded reply, refusing
// rather than guessing when the snippets do not cover the question.
package answer

import (
	"context"
	"log"
	"regexp"
	"strings"

	"clinic-assistant-be/pkg/llm"
	"clinic-assistant-be/pkg/store"
	"clinic-assistant-be/pkg/textutil"
)

const (
	maxContextSnippets = 3
	maxContextChars    = 1500
)

var (
	answerPrefix = regexp.MustCompile(`(?i)^(answer:|the answer is:?|based on[^:]{0,80}:)\s*`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Generator produces grounded answers from snippets.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

// NewGenerator creates a new answer generator
func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Answer builds a constrained prompt from the top snippets and asks the
// model for a reply grounded only in them. A model failure falls back to an
// extractive passage from the best snippet; a model reply that admits it
// found nothing is replaced by the canonical refusal.
func (g *Generator) Answer(ctx context.Context, query string, snippets []store.Snippet) string {
	if len(snippets) == 0 {
		return NoResultMessage(query)
	}

	prompt := g.buildPrompt(query, snippets)

	response, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		g.logger.Printf("[ERROR] Answer generation failed: %v", err)
		return g.extractiveFallback(query, snippets)
	}

	answer := cleanAnswer(response)
	if answer == "" || ContainsNoInfoMarker(answer) {
		return NoResultMessage(query)
	}

	return answer
}

func (g *Generator) buildPrompt(query string, snippets []store.Snippet) string {
	var b strings.Builder

	b.WriteString("Answer the question using ONLY the context below.\n")
	b.WriteString("If the context does not contain the answer, say exactly: ")
	b.WriteString(GenericNoResult)
	b.WriteString("\nDo not use outside knowledge. Keep the answer short and factual.\n\n")

	b.WriteString("Context:\n")
	total := 0
	for i, s := range snippets {
		if i >= maxContextSnippets || total >= maxContextChars {
			break
		}
		text := s.Text
		if total+len(text) > maxContextChars {
			text = text[:maxContextChars-total]
		}
		b.WriteString("---\n")
		b.WriteString(text)
		b.WriteString("\n")
		total += len(text)
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(query)
	b.WriteString("\nAnswer:")

	return b.String()
}

// extractiveFallback pulls a readable passage straight from the best snippet
// around the first query-term hit. Knowledge questions get the refusal
// instead, because a raw excerpt cannot safely stand in for an explanation.
func (g *Generator) extractiveFallback(query string, snippets []store.Snippet) string {
	if textutil.IsKnowledgeQuery(query) {
		return NoResultMessage(query)
	}

	text := snippets[0].Text
	if text == "" {
		return NoResultMessage(query)
	}

	lower := strings.ToLower(text)
	pos := -1
	for _, term := range strings.Fields(textutil.Normalize(query)) {
		if len(term) < 4 {
			continue
		}
		if idx := strings.Index(lower, term); idx != -1 && (pos == -1 || idx < pos) {
			pos = idx
		}
	}
	if pos == -1 {
		pos = 0
	}

	start := pos - 100
	if start < 0 {
		start = 0
	}
	end := start + 300
	if end > len(text) {
		end = len(text)
	}

	passage := strings.TrimSpace(text[start:end])
	if start > 0 {
		passage = "..." + passage
	}
	if end < len(text) {
		passage += "..."
	}
	return passage
}

func cleanAnswer(response string) string {
	answer := strings.TrimSpace(response)
	answer = answerPrefix.ReplaceAllString(answer, "")
	answer = whitespace.ReplaceAllString(answer, " ")
	answer = strings.TrimSpace(answer)

	if answer == "" {
		return ""
	}
	switch answer[len(answer)-1] {
	case '.', '!', '?':
	default:
		answer += "."
	}
	return answer
}
