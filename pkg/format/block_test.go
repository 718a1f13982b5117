package format

import (
	"strings"
	"testing"
)

func TestBlockTitleIsBold(t *testing.T) {
	out := Block("Doctor Information", "Dr. Smith is available on Monday.")

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "**") || !strings.HasSuffix(lines[0], "**") {
		t.Fatalf("first line is not bold-wrapped: %q", lines[0])
	}
	if lines[0] != "**Doctor Information**" {
		t.Fatalf("unexpected title line: %q", lines[0])
	}
	if len(lines) < 3 || lines[1] != "" {
		t.Fatalf("expected blank line after title, got %q", out)
	}
}

func TestBlockStripsStrayAsterisksFromTitle(t *testing.T) {
	out := Block("**Clinic **Info**", "Open daily.")

	first := strings.SplitN(out, "\n", 2)[0]
	if first != "**Clinic Info**" {
		t.Fatalf("title not cleaned: %q", first)
	}
}

func TestBlockIdempotent(t *testing.T) {
	once := Block("Available Slots", "• 09:00 - 10:00\n• 10:00 - 11:00")
	twice := Normalize(once)

	if once != twice {
		t.Fatalf("formatting is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestNormalizeDoesNotSplitTimesAndDecimals(t *testing.T) {
	out := Normalize("The slot starts at 5:31 and the fee is 12.50 per visit.")

	if !strings.Contains(out, "5:31") {
		t.Fatalf("time token altered: %q", out)
	}
	if !strings.Contains(out, "12.50") {
		t.Fatalf("decimal token altered: %q", out)
	}
}

func TestNormalizeInsertsSentenceSpacing(t *testing.T) {
	out := Normalize("Dr. Lee is away.Please pick another slot.")

	if !strings.Contains(out, "away. Please") {
		t.Fatalf("missing sentence spacing: %q", out)
	}
}

func TestNormalizeCanonicalizesBullets(t *testing.T) {
	out := Normalize("- first item\n* second item\n•   third item")

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, Bullet) {
			t.Fatalf("line not canonicalized: %q", line)
		}
	}
}

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	out := Normalize("first paragraph\n\n\n\n\nsecond paragraph")

	if strings.Contains(out, "\n\n\n") {
		t.Fatalf("more than one consecutive blank line survives: %q", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Fatalf("edge blank lines not trimmed: %q", out)
	}
}

func TestNormalizePreservesBoldSpans(t *testing.T) {
	out := Normalize("see **Monday** for details")

	if !strings.Contains(out, "**Monday**") {
		t.Fatalf("bold span lost: %q", out)
	}
	if strings.Contains(out, "\x00") {
		t.Fatalf("placeholder leaked into output: %q", out)
	}
}

func TestBlockEmptyTitleFallsBackToBody(t *testing.T) {
	out := Block("", "just the body text")

	if strings.Contains(out, "**") {
		t.Fatalf("unexpected bold markup without a title: %q", out)
	}
	if out != "just the body text" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestBulletAndNumberedLists(t *testing.T) {
	bl := BulletList([]string{"alpha", "beta"})
	if bl != Bullet+"alpha\n"+Bullet+"beta" {
		t.Fatalf("unexpected bullet list: %q", bl)
	}

	nl := NumberedList([]string{"alpha", "beta"})
	if nl != "1. alpha\n2. beta" {
		t.Fatalf("unexpected numbered list: %q", nl)
	}
}
