package format

import (
	"fmt"
	"sort"
	"strings"

	"clinic-assistant-be/pkg/store"
)

const maxSlotRows = 30

// Slots renders available booking slots grouped by day of week, each
// group sorted by start time.
func Slots(results []store.Record, query string) string {
	if len(results) == 0 {
		return Block("Available Slots", "No available slots matched your request.")
	}

	capped := results
	if len(capped) > maxSlotRows {
		capped = capped[:maxSlotRows]
	}

	byDay := make(map[string][]store.Record)
	for _, slot := range capped {
		day := slot.Str("dayOfWeek", "day")
		if day == "" {
			day = "Unknown Day"
		}
		byDay[day] = append(byDay[day], slot)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var sections []string
	for _, day := range days {
		slots := byDay[day]
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].Str("startTime", "start") < slots[j].Str("startTime", "start")
		})

		var lines []string
		for _, slot := range slots {
			start := slot.Str("startTime", "start")
			if start == "" {
				start = "Unknown"
			}
			end := slot.Str("endTime", "end")
			if end == "" {
				end = "Unknown"
			}
			entry := start + " - " + end
			if maxp := slot.Str("maximumPatients", "maxPatients"); maxp != "" {
				entry += fmt.Sprintf(" (Max: %s patients)", maxp)
			}
			if doctor := slot.Str("doctorName", "doctor"); doctor != "" {
				entry += " - Dr. " + doctor
			}
			lines = append(lines, entry)
		}

		sections = append(sections, "**"+day+"**\n"+BulletList(lines))
	}

	body := strings.Join(sections, "\n\n") + fmt.Sprintf("\n\nTotal available slots: %d", len(results))
	if len(days) == 1 {
		body += fmt.Sprintf("\nTo book a %s slot, please provide the exact time and your details.", days[0])
	} else {
		body += "\nTo book a slot, please specify the day, time, and provide your details."
	}

	return Block("Available Appointment Slots", body)
}
