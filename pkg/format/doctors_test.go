package format

import (
	"fmt"
	"strings"
	"testing"

	"clinic-assistant-be/pkg/store"
)

func TestDoctorsEmpty(t *testing.T) {
	out := Doctors(nil, "show me doctors")

	if !strings.HasPrefix(out, "**Doctor Information**") {
		t.Fatalf("missing title: %q", out)
	}
	if !strings.Contains(out, "No matching doctors") {
		t.Fatalf("missing no-match message: %q", out)
	}
}

func TestDoctorsSingleDetailCard(t *testing.T) {
	out := Doctors([]store.Record{{
		"name":           "Dr. Asha Rao",
		"specialization": "Cardiology",
		"email":          "asha@clinic.example",
	}}, "tell me about cardiology")

	for _, want := range []string{"Name: Dr. Asha Rao", "Specialization: Cardiology", "Email: asha@clinic.example"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "Phone:") {
		t.Fatalf("absent phone should be omitted: %q", out)
	}
}

func TestDoctorsPlaceholderContactOmitted(t *testing.T) {
	out := Doctors([]store.Record{{
		"name":  "Dr. Lim",
		"email": "None",
		"phone": "N/A",
	}}, "dr lim contact")

	if strings.Contains(out, "Email:") || strings.Contains(out, "Phone:") {
		t.Fatalf("placeholder contact fields leaked: %q", out)
	}
	if !strings.Contains(out, "Specialization: General Practice") {
		t.Fatalf("missing default specialization: %q", out)
	}
}

func TestDoctorsNameInQueryPicksDetailCard(t *testing.T) {
	records := []store.Record{
		{"name": "Dr. Ahmed", "specialization": "Dermatology"},
		{"name": "Dr. Verma", "specialization": "Neurology"},
	}
	out := Doctors(records, "what are Dr. Verma's qualifications")

	if !strings.Contains(out, "Name: Dr. Verma") {
		t.Fatalf("expected detail card for queried doctor: %q", out)
	}
	if strings.Contains(out, "Dr. Ahmed") {
		t.Fatalf("unrelated doctor leaked into detail card: %q", out)
	}
}

func TestDoctorsListCappedWithTotal(t *testing.T) {
	var records []store.Record
	for i := 0; i < 20; i++ {
		records = append(records, store.Record{
			"name":           fmt.Sprintf("Dr. Number%02d", i),
			"specialization": "General",
		})
	}
	out := Doctors(records, "list all doctors")

	if !strings.Contains(out, "15. ") {
		t.Fatalf("expected 15 list entries: %q", out)
	}
	if strings.Contains(out, "16. ") {
		t.Fatalf("list not capped at 15: %q", out)
	}
	if !strings.Contains(out, "Total: 20 doctors found.") {
		t.Fatalf("missing total line: %q", out)
	}
}
