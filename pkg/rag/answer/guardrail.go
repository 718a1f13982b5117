package answer

import (
	"strings"

	"clinic-assistant-be/pkg/textutil"
)

// Canonical refusal messages. Knowledge-style questions get the longer
// variant so the user knows the limit is the document set, not the system.
const (
	KnowledgeNoResult = "I don't have information about that in my knowledge base. This information is not available in the provided documents."
	GenericNoResult   = "No relevant information found in the uploaded documents."
)

// noInfoPhrases are markers a model emits when the context did not contain
// the answer. A response carrying one is replaced by the canonical refusal
// instead of being shown verbatim.
var noInfoPhrases = []string{
	"i don't have information",
	"i do not have information",
	"not available in the provided documents",
	"no relevant information",
	"i cannot find",
	"i can't find",
	"couldn't find any information",
	"the documents do not mention",
	"the context does not contain",
	"no information about",
	"not mentioned in the documents",
}

// NoResultMessage picks the canonical refusal for a query.
func NoResultMessage(query string) string {
	if textutil.IsKnowledgeQuery(query) {
		return KnowledgeNoResult
	}
	return GenericNoResult
}

// ContainsNoInfoMarker reports whether a model response admits it found
// nothing.
func ContainsNoInfoMarker(response string) bool {
	lower := strings.ToLower(response)
	for _, phrase := range noInfoPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
