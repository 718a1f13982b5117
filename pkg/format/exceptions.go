package format

import (
	"fmt"

	"clinic-assistant-be/pkg/store"
)

const maxExceptionRows = 10

// Exceptions renders schedule exceptions (holidays, cancellations).
func Exceptions(results []store.Record, query string) string {
	if len(results) == 0 {
		return Block("Schedule Exceptions", "No schedule exceptions found.")
	}

	var items []string
	for i, exc := range results {
		if i >= maxExceptionRows {
			break
		}
		reason := exc.Str("reason")
		if reason == "" {
			reason = "Unknown reason"
		}
		date := exc.Str("date")
		if date == "" {
			date = "Unknown date"
		}
		items = append(items, reason+" ("+date+")")
	}

	body := NumberedList(items) + fmt.Sprintf("\n\nTotal exceptions found: %d", len(results))
	return Block("Schedule Exceptions", body)
}
