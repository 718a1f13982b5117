package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"clinic-assistant-be/pkg/llm"
)

// Analyzer performs pure LLM-based query planning. It never errors upward:
// any failure in the model call or the parse degrades to a keyword-driven
// fallback descriptor, so a structured query always has a plan to run.
type Analyzer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

// NewAnalyzer creates a new query intent analyzer
func NewAnalyzer(llmProvider llm.LLMProvider, logger *log.Logger) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Analyze maps the user query onto one of the known collections. schemas
// carries the live collection names and their sample fields so the prompt
// reflects what actually exists in the store.
func (a *Analyzer) Analyze(ctx context.Context, query string, schemas map[string][]string) *Descriptor {
	prompt := a.buildPrompt(query, schemas)

	response, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		a.logger.Printf("[ERROR] Intent analysis failed: %v", err)
		return a.fallbackDescriptor(query)
	}

	desc, err := a.parseDescriptor(response)
	if err != nil {
		a.logger.Printf("[WARN] Intent parsing failed, using fallback: %v", err)
		return a.fallbackDescriptor(query)
	}

	a.validate(desc, query)

	a.logger.Printf("[INTENT] Resolved: collection=%s type=%s filters=%d",
		desc.Collection, desc.QueryType, len(desc.Filters))

	return desc
}

func (a *Analyzer) buildPrompt(query string, schemas map[string][]string) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are a query planner for a clinic database. Your ONLY job is to map the user's question onto ONE collection.\n")
	prompt.WriteString("You do NOT answer the question. You only produce the query plan.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<collections>\n")
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prompt.WriteString(fmt.Sprintf("%s: fields [%s]\n", name, strings.Join(schemas[name], ", ")))
	}
	prompt.WriteString("</collections>\n\n")

	prompt.WriteString("<user_query>\n")
	prompt.WriteString(query)
	prompt.WriteString("\n</user_query>\n\n")

	prompt.WriteString("<rules>\n")
	prompt.WriteString("- collection MUST be one of: doctors, clinic, appointments, slots, notices, slotexception\n")
	prompt.WriteString("- Questions about availability, timings, or schedules target slots\n")
	prompt.WriteString("- Questions about holidays or closures target slotexception\n")
	prompt.WriteString("- filters use MongoDB operators; match weekday names case-insensitively with $regex\n")
	prompt.WriteString("- fields lists only the projections the answer needs; empty means all\n")
	prompt.WriteString("</rules>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"collection\": \"doctors\",\n")
	prompt.WriteString("  \"fields\": [\"name\", \"specialization\"],\n")
	prompt.WriteString("  \"filters\": {},\n")
	prompt.WriteString("  \"query_type\": \"list_all|search_specific|find_by_name|find_by_date|other\",\n")
	prompt.WriteString("  \"explanation\": \"Brief explanation\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

func (a *Analyzer) parseDescriptor(response string) (*Descriptor, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var desc Descriptor
	if err := json.Unmarshal([]byte(jsonContent), &desc); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	desc.Collection = strings.ToLower(strings.TrimSpace(desc.Collection))
	if desc.Filters == nil {
		desc.Filters = map[string]interface{}{}
	}
	if desc.QueryType == "" {
		desc.QueryType = QueryTypeOther
	}

	return &desc, nil
}

// validate corrects a descriptor whose collection drifted outside the
// allowed set, and layers in the weekday filter when the model missed one
// the query clearly asks for.
func (a *Analyzer) validate(desc *Descriptor, query string) {
	if !AllowedCollections[desc.Collection] {
		corrected := keywordCollection(query)
		a.logger.Printf("[WARN] Invalid collection %q, corrected to %q", desc.Collection, corrected)
		desc.Collection = corrected
	}

	if desc.Collection == "slots" && len(desc.Filters) == 0 {
		if day := weekdayIn(query); day != "" {
			desc.Filters = weekdayFilter(day)
			if desc.QueryType == QueryTypeListAll {
				desc.QueryType = QueryTypeSearchSpecific
			}
		}
	}
}

// keywordCollection picks a collection from plain keywords. Order matters:
// "appointment slot" should resolve to appointments, not slots.
func keywordCollection(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "doctor"):
		return "doctors"
	case strings.Contains(q, "clinic"):
		return "clinic"
	case strings.Contains(q, "appointment"):
		return "appointments"
	case strings.Contains(q, "slot"), strings.Contains(q, "available"), strings.Contains(q, "timing"):
		return "slots"
	case strings.Contains(q, "notice"), strings.Contains(q, "announcement"):
		return "notices"
	case strings.Contains(q, "exception"), strings.Contains(q, "holiday"), strings.Contains(q, "closed"):
		return "slotexception"
	}
	// No domain keyword at all: leave the collection unresolved so the
	// caller can fall through to free-text answering.
	return ""
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
