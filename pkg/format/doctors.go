package format

import (
	"fmt"
	"strings"

	"clinic-assistant-be/pkg/store"
)

const maxDoctorRows = 15

// Doctors renders doctor records. A single match, or a doctor whose name
// appears verbatim in the query, gets the detailed card; otherwise a capped
// enumerated list. Optional fields are omitted when absent, never rendered
// as a placeholder.
func Doctors(results []store.Record, query string) string {
	if len(results) == 0 {
		return Block("Doctor Information", "No matching doctors were found in the database.")
	}

	qLower := strings.ToLower(query)
	var specific store.Record
	for _, doc := range results {
		name := strings.ToLower(doc.Str("name"))
		if name != "" && strings.Contains(qLower, name) {
			specific = doc
			break
		}
	}

	if specific != nil || len(results) == 1 {
		d := specific
		if d == nil {
			d = results[0]
		}

		name := d.Str("name")
		if name == "" {
			name = "Unknown Doctor"
		}
		specialization := d.Str("specialization", "specialty", "expertise")
		if specialization == "" {
			specialization = "General Practice"
		}

		lines := []string{
			"Name: " + name,
			"Specialization: " + specialization,
		}
		if v := d.Str("email"); presentValue(v) {
			lines = append(lines, "Email: "+v)
		}
		if v := d.Str("phone", "mobile", "contactNumber"); presentValue(v) {
			lines = append(lines, "Phone: "+v)
		}
		if v := d.Str("clinic", "clinicName"); v != "" {
			lines = append(lines, "Clinic: "+v)
		}
		if v := d.Str("experience"); v != "" {
			lines = append(lines, "Experience: "+v)
		}
		if v := d.Str("qualification"); v != "" {
			lines = append(lines, "Qualification: "+v)
		}

		body := BulletList(lines) + "\n\nIf you'd like more details, feel free to ask."
		return Block("Doctor Information", body)
	}

	var items []string
	for i, doc := range results {
		if i >= maxDoctorRows {
			break
		}
		name := doc.Str("name")
		if name == "" {
			name = fmt.Sprintf("Doctor %d", i+1)
		}
		if specialty := doc.Str("specialization", "specialty"); specialty != "" {
			items = append(items, name+" - "+specialty)
		} else {
			items = append(items, name)
		}
	}

	body := NumberedList(items) + fmt.Sprintf(
		"\n\nTotal: %d doctors found.\nTo get detailed information about any doctor, please ask for them by name.",
		len(results))
	return Block("Doctor List", body)
}

// presentValue filters out placeholder-ish values that some records carry
// instead of a real absence.
func presentValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "none", "n/a", "not available":
		return false
	}
	return true
}
