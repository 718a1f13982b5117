package format

import (
	"fmt"
	"strings"

	"clinic-assistant-be/pkg/store"
)

const maxClinicRows = 20

// Clinics renders clinic records in the same detail-card / capped-list
// shape as Doctors.
func Clinics(results []store.Record, query string) string {
	if len(results) == 0 {
		return Block("Clinics", "No clinics were found in the database.")
	}

	qLower := strings.ToLower(query)
	var specific store.Record
	for _, c := range results {
		name := strings.ToLower(c.Str("clinicName", "name"))
		if name != "" && strings.Contains(qLower, name) {
			specific = c
			break
		}
	}

	if specific != nil || len(results) == 1 {
		c := specific
		if c == nil {
			c = results[0]
		}

		name := c.Str("clinicName", "name")
		if name == "" {
			name = "Unknown Clinic"
		}
		address := c.Str("address")
		if address == "" {
			address = "Address not specified"
		}
		phone := c.Str("phone", "contactNumber", "mobile")
		if phone == "" {
			phone = "Not available"
		}

		lines := []string{
			"Name: " + name,
			"Address: " + address,
			"Phone: " + phone,
		}
		if v := c.Str("email"); presentValue(v) {
			lines = append(lines, "Email: "+v)
		}
		if v := c.Str("specialty", "specialization"); presentValue(v) {
			lines = append(lines, "Specialty: "+v)
		}

		body := BulletList(lines) + "\n\nFor more details or to book an appointment, please contact the clinic directly."
		return Block("Clinic Information", body)
	}

	var entries []string
	for i, c := range results {
		if i >= maxClinicRows {
			break
		}
		name := c.Str("clinicName", "name")
		if name == "" {
			name = fmt.Sprintf("Clinic %d", i+1)
		}
		entry := fmt.Sprintf("%d. %s", i+1, name)
		if v := c.Str("address"); v != "" {
			entry += "\n" + Bullet + "Address: " + v
		}
		if v := c.Str("phone", "contactNumber", "mobile"); presentValue(v) {
			entry += "\n" + Bullet + "Phone: " + v
		}
		entries = append(entries, entry)
	}

	body := strings.Join(entries, "\n\n") + fmt.Sprintf(
		"\n\nTotal: %d clinics found.\nFor detailed information about a specific clinic, mention its name.",
		len(results))
	return Block("Clinics", body)
}
