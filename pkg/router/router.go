// Package router decides which pipeline handles an incoming chat message.
// Classification is deterministic and purely lexical: the same text always
// takes the same route.
package router

import (
	"regexp"
	"strings"

	"clinic-assistant-be/pkg/textutil"
)

// Route identifies the pipeline a message is dispatched to.
type Route string

const (
	RouteGreeting        Route = "greeting"
	RouteSystemInfo      Route = "system_info"
	RouteStructuredQuery Route = "structured_query"
	RouteFreeText        Route = "free_text"
)

var slotTimePattern = regexp.MustCompile(`\b\d{1,2}[:.]\d{2}\b|\b\d{1,2}\s*(am|pm)\b`)

// Classify routes a raw user message. Precedence, highest first: exact
// greetings, system-info questions, document questions, clinic schema
// keywords, slot time phrasing. Anything left falls through to free-text
// retrieval.
func Classify(text string) Route {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return RouteFreeText
	}

	if greetings[normalized] {
		return RouteGreeting
	}

	for _, kw := range infoKeywords {
		if strings.Contains(normalized, kw) {
			return RouteSystemInfo
		}
	}

	for _, kw := range documentKeywords {
		if strings.Contains(normalized, kw) {
			return RouteFreeText
		}
	}

	for _, kw := range schemaKeywords {
		if strings.Contains(normalized, kw) {
			return RouteStructuredQuery
		}
	}

	if slotTimePattern.MatchString(strings.ToLower(text)) &&
		(strings.Contains(normalized, "when") ||
			strings.Contains(normalized, "available") ||
			strings.Contains(normalized, "slot")) {
		return RouteStructuredQuery
	}

	// Knowledge-style questions and everything unclassified go to retrieval.
	return RouteFreeText
}
