package intent

import "strings"

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// fallbackDescriptor builds a plan from keywords alone, used whenever the
// model cannot be reached or returns something unparseable.
func (a *Analyzer) fallbackDescriptor(query string) *Descriptor {
	desc := &Descriptor{
		Collection:  keywordCollection(query),
		Fields:      nil,
		Filters:     map[string]interface{}{},
		QueryType:   QueryTypeListAll,
		Explanation: "Fallback: keyword-based plan",
	}

	if desc.Collection == "slots" {
		if day := weekdayIn(query); day != "" {
			desc.Filters = weekdayFilter(day)
			desc.QueryType = QueryTypeSearchSpecific
		}
	}

	return desc
}

func weekdayIn(query string) string {
	q := strings.ToLower(query)
	for _, day := range weekdays {
		if strings.Contains(q, day) {
			return day
		}
	}
	return ""
}

// weekdayFilter matches stored day names regardless of their casing.
func weekdayFilter(day string) map[string]interface{} {
	return map[string]interface{}{
		"dayOfWeek": map[string]interface{}{
			"$regex":   day,
			"$options": "i",
		},
	}
}
