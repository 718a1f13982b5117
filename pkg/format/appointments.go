package format

import (
	"fmt"

	"clinic-assistant-be/pkg/store"
)

const maxAppointmentRows = 10

// Appointments renders booked appointments, detail card for a single
// match and a capped summary list otherwise.
func Appointments(results []store.Record, query string) string {
	if len(results) == 0 {
		return Block("Appointments", "No appointments matched your query.")
	}

	if len(results) == 1 {
		a := results[0]
		patient := a.Str("patientName")
		if patient == "" {
			patient = "Unknown"
		}
		doctor := a.Str("doctorName")
		if doctor == "" {
			doctor = "Unknown"
		}
		date := a.Str("date")
		if date == "" {
			date = "Unknown"
		}

		lines := []string{
			"Patient: " + patient,
			"Doctor: " + doctor,
			"Date: " + date,
		}
		if v := a.Str("time", "assignedTime"); v != "" {
			lines = append(lines, "Time: "+v)
		}
		if v := a.Str("status"); v != "" {
			lines = append(lines, "Status: "+v)
		}
		return Block("Appointment Details", BulletList(lines))
	}

	var items []string
	for i, a := range results {
		if i >= maxAppointmentRows {
			break
		}
		patient := a.Str("patientName")
		if patient == "" {
			patient = fmt.Sprintf("Patient %d", i+1)
		}
		doctor := a.Str("doctorName")
		if doctor == "" {
			doctor = "Unknown"
		}
		entry := patient + " - " + doctor
		if date := a.Str("date"); date != "" {
			entry += " (" + date + ")"
		}
		items = append(items, entry)
	}

	body := NumberedList(items) + fmt.Sprintf("\n\nTotal appointments found: %d", len(results))
	return Block("Appointments", body)
}
