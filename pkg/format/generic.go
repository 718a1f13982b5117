package format

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"clinic-assistant-be/pkg/llm"
	"clinic-assistant-be/pkg/store"
)

// GenericFormatter handles result sets from collections that have no
// dedicated formatter by asking the LLM for a concise summary of the
// first few records. On LLM failure it falls back to a raw JSON dump.
type GenericFormatter struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenericFormatter(llmProvider llm.LLMProvider, logger *log.Logger) *GenericFormatter {
	return &GenericFormatter{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Format renders an arbitrary record set as a Response block.
func (g *GenericFormatter) Format(ctx context.Context, results []store.Record, query string, explanation string) string {
	sample := results
	if len(sample) > 5 {
		sample = sample[:5]
	}
	sampleJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		sampleJSON = []byte("[]")
	}

	var prompt strings.Builder
	prompt.WriteString("Based on this user query and database results, provide a concise, professional response.\n\n")
	prompt.WriteString(fmt.Sprintf("User Query: %q\n", query))
	if explanation != "" {
		prompt.WriteString("Query Analysis: " + explanation + "\n")
	}
	prompt.WriteString(fmt.Sprintf("Database Results (%d items, first %d shown):\n", len(results), len(sample)))
	prompt.Write(sampleJSON)
	prompt.WriteString("\n\nProvide a short title and concise bullet points. End with an invitation for follow-up.\n")
	prompt.WriteString("Return only the response text (no extra JSON).")

	response, err := g.llmProvider.Generate(ctx, prompt.String(),
		llm.WithTemperature(0.2), llm.WithMaxTokens(400))
	if err != nil || strings.TrimSpace(response) == "" {
		if err != nil {
			g.logger.Printf("[WARN] LLM summary failed, dumping raw results: %v", err)
		}
		body := fmt.Sprintf("I found %d results. Showing the first few:\n\n%s", len(results), sampleJSON)
		return Block("Results", body)
	}

	return Block("Results", strings.TrimSpace(response))
}
