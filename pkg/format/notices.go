package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clinic-assistant-be/pkg/store"
)

const maxNoticeRows = 10

// Notices renders announcements newest-first. Timestamps are reformatted
// best-effort; values that fail to parse are shown as-is.
func Notices(results []store.Record, query string) string {
	if len(results) == 0 {
		return Block("Notices", "No notices found at this time.")
	}

	sorted := make([]store.Record, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Str("createdAt", "date", "timestamp") > sorted[j].Str("createdAt", "date", "timestamp")
	})

	var entries []string
	for i, n := range sorted {
		if i >= maxNoticeRows {
			break
		}
		title := n.Str("title")
		if title == "" {
			title = fmt.Sprintf("Notice %d", i+1)
		}

		entry := "**" + title + "**"
		if msg := strings.TrimSpace(n.Str("message", "content", "description")); msg != "" {
			if !strings.HasSuffix(msg, ".") {
				msg += "."
			}
			entry += "\n" + msg
		}
		if created := n.Str("createdAt", "date", "timestamp"); created != "" {
			entry += "\n" + Bullet + "Posted: " + reformatDate(created)
		}
		entries = append(entries, entry)
	}

	body := strings.Join(entries, "\n\n") + fmt.Sprintf("\n\nTotal notices: %d", len(results))
	return Block("Latest Notices", body)
}

// reformatDate turns an ISO-ish timestamp into "2006-01-02 15:04",
// returning the input unchanged on parse failure.
func reformatDate(raw string) string {
	value := raw
	// Drop fractional seconds; RFC3339 parsing below handles the rest.
	if idx := strings.Index(value, "."); idx > 0 {
		value = value[:idx]
	}
	value = strings.Replace(value, "Z", "+00:00", 1)

	layouts := []string{
		"2006-01-02T15:04:05+00:00",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return raw
}
