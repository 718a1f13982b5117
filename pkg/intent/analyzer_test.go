package intent

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"clinic-assistant-be/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func newTestAnalyzer(resp string, err error) *Analyzer {
	return NewAnalyzer(&fakeLLM{response: resp, err: err}, log.New(os.Stderr, "", 0))
}

var testSchemas = map[string][]string{
	"doctors": {"name", "specialization", "email"},
	"slots":   {"dayOfWeek", "startTime", "endTime", "maxPatients"},
}

func TestAnalyzeParsesJSONFromProse(t *testing.T) {
	a := newTestAnalyzer(`Sure, here is the plan: {"collection":"doctors","fields":["name"],"filters":{},"query_type":"list_all","explanation":"list"} hope that helps`, nil)

	desc := a.Analyze(context.Background(), "list all doctors", testSchemas)

	if desc.Collection != "doctors" {
		t.Fatalf("expected doctors, got %q", desc.Collection)
	}
	if desc.QueryType != QueryTypeListAll {
		t.Fatalf("expected list_all, got %q", desc.QueryType)
	}
	if len(desc.Fields) != 1 || desc.Fields[0] != "name" {
		t.Fatalf("unexpected fields: %v", desc.Fields)
	}
}

func TestAnalyzeFallsBackOnLLMError(t *testing.T) {
	a := newTestAnalyzer("", errors.New("connection refused"))

	desc := a.Analyze(context.Background(), "show me the doctors list", testSchemas)

	if desc == nil {
		t.Fatal("expected a descriptor, got nil")
	}
	if desc.Collection != "doctors" {
		t.Fatalf("expected doctors fallback, got %q", desc.Collection)
	}
	if desc.Filters == nil {
		t.Fatal("filters must never be nil")
	}
}

func TestAnalyzeCorrectsInvalidCollection(t *testing.T) {
	a := newTestAnalyzer(`{"collection":"patients","fields":[],"filters":{},"query_type":"other","explanation":""}`, nil)

	desc := a.Analyze(context.Background(), "is the clinic open tomorrow", testSchemas)

	if desc.Collection != "clinic" {
		t.Fatalf("expected keyword correction to clinic, got %q", desc.Collection)
	}
}

func TestAnalyzeAddsWeekdayFilterForSlots(t *testing.T) {
	a := newTestAnalyzer(`{"collection":"slots","fields":[],"filters":{},"query_type":"list_all","explanation":""}`, nil)

	desc := a.Analyze(context.Background(), "what slots are available on Monday", testSchemas)

	filter, ok := desc.Filters["dayOfWeek"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing dayOfWeek filter: %v", desc.Filters)
	}
	if filter["$regex"] != "monday" || filter["$options"] != "i" {
		t.Fatalf("unexpected weekday filter: %v", filter)
	}
	if desc.QueryType != QueryTypeSearchSpecific {
		t.Fatalf("expected search_specific, got %q", desc.QueryType)
	}
}

func TestFallbackKeywordPriority(t *testing.T) {
	a := newTestAnalyzer("", errors.New("down"))

	cases := []struct {
		query string
		want  string
	}{
		{"which doctor handles my appointment slot", "doctors"},
		{"cancel my appointment slot", "appointments"},
		{"is monday a holiday", "slotexception"},
		{"any new notices", "notices"},
		{"what timings are available", "slots"},
		{"random gibberish", ""},
		{"when is 5:30 good for you", ""},
	}
	for _, tc := range cases {
		desc := a.Analyze(context.Background(), tc.query, testSchemas)
		if desc.Collection != tc.want {
			t.Errorf("query %q: expected %q, got %q", tc.query, tc.want, desc.Collection)
		}
	}
}

func TestFallbackWeekdayFilter(t *testing.T) {
	a := newTestAnalyzer("garbage with no braces", nil)

	desc := a.Analyze(context.Background(), "slot availability on friday", testSchemas)

	if desc.Collection != "slots" {
		t.Fatalf("expected slots, got %q", desc.Collection)
	}
	filter, ok := desc.Filters["dayOfWeek"].(map[string]interface{})
	if !ok || filter["$regex"] != "friday" {
		t.Fatalf("missing friday filter: %v", desc.Filters)
	}
}
