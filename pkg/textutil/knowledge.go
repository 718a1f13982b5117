package textutil

import (
	"regexp"
	"strings"
)

// Patterns that indicate the user is asking for a factual definition or
// explanation rather than poking around the data.
var knowledgePatterns = []*regexp.Regexp{
	regexp.MustCompile(`what (is|are) (the )?(full form of|meaning of|definition of|information about)`),
	regexp.MustCompile(`\bexplain\b`),
	regexp.MustCompile(`\bdescribe\b`),
	regexp.MustCompile(`tell me about`),
	regexp.MustCompile(`who (is|are)`),
	regexp.MustCompile(`when (is|was|did)`),
	regexp.MustCompile(`where (is|are|was)`),
	regexp.MustCompile(`why (is|are|does)`),
	regexp.MustCompile(`how (does|do|is|are)`),
}

var knowledgeKeywords = []string{
	"what is", "what are", "full form", "meaning of",
	"definition", "explain", "describe", "information about",
	"tell me about",
}

// IsKnowledgeQuery reports whether the text reads like a request for factual
// information (a definition, a full form, an explanation). The guardrail
// layer uses this to decide between the two "no information" messages.
func IsKnowledgeQuery(text string) bool {
	lower := strings.ToLower(text)

	for _, p := range knowledgePatterns {
		if p.MatchString(lower) {
			return true
		}
	}

	for _, kw := range knowledgeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
