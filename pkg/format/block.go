// Package format renders every assistant reply in one canonical visual
// style: a bold title line, a blank line, then a normalized body with
// canonical bullets and clean spacing.
package format

import (
	"fmt"
	"regexp"
	"strings"
)

// Bullet is the canonical bullet prefix used for all list lines.
const Bullet = "• "

var (
	boldPattern     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	multiSpace      = regexp.MustCompile(`[ \t]{2,}`)
	bulletGlyph     = regexp.MustCompile(`(?m)^\s*[-*•]\s*`)
	multiNewline    = regexp.MustCompile(`\n{3,}`)
	sentenceSpacing = regexp.MustCompile(`(^|[^0-9])([.!?])([A-Za-z0-9])`)
	asterisks       = regexp.MustCompile(`\*+`)
)

// Normalize applies the global formatting pass to arbitrary text:
// unescapes literal escape sequences, collapses runs of horizontal
// whitespace, converts -, * and • line starts to the canonical bullet,
// inserts a space after sentence punctuation (digit-adjacent tokens like
// "5:31" or "3.50" are left alone), caps consecutive newlines at one blank
// line, trims trailing whitespace per line, and drops leading/trailing
// blank lines. Bold markers already in the text survive the pass.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.NewReplacer(
		"\\n", "\n",
		"\\t", " ",
		"\\r", "",
		"\\\"", "\"",
		"\\'", "'",
	).Replace(text)

	// Protect existing bold spans so whitespace collapsing cannot eat the
	// markers, then restore them afterwards.
	var protected []string
	text = boldPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[2 : len(m)-2]
		placeholder := fmt.Sprintf("\x00B%d\x00", len(protected))
		protected = append(protected, inner)
		return placeholder
	})

	text = multiSpace.ReplaceAllString(text, " ")
	text = bulletGlyph.ReplaceAllString(text, Bullet)
	text = sentenceSpacing.ReplaceAllString(text, "$1$2 $3")
	text = multiNewline.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	text = strings.Join(lines, "\n")

	for i, inner := range protected {
		text = strings.Replace(text, fmt.Sprintf("\x00B%d\x00", i), "**"+inner+"**", 1)
	}

	return text
}

// Block produces the canonical response block: the title wrapped in exactly
// one pair of bold markers, a blank line, then the normalized body. Any
// markers already on the title are stripped first, so re-wrapping an
// already formatted title never doubles them. Both inputs empty yields "".
func Block(title, body string) string {
	title = strings.TrimSpace(asterisks.ReplaceAllString(title, ""))

	body = strings.TrimSpace(body)
	if title == "" {
		// Degenerate case: nothing to wrap, the body stands alone.
		return Normalize(body)
	}

	block := Normalize("**" + title + "**\n\n" + body)

	// Normalization must not be able to corrupt the title wrapping; if it
	// did, rebuild the title line from its bare text.
	lines := strings.Split(block, "\n")
	for i, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" || strings.HasPrefix(trimmed, Bullet) {
			continue
		}
		if !strings.HasPrefix(trimmed, "**") || !strings.HasSuffix(trimmed, "**") || len(trimmed) < 4 {
			clean := strings.TrimSpace(asterisks.ReplaceAllString(trimmed, ""))
			lines[i] = "**" + clean + "**"
		}
		break
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// BulletList renders one canonical bullet line per item, preserving order.
func BulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = Bullet + item
	}
	return strings.Join(lines, "\n")
}

// NumberedList renders "1. item" lines with 1-based indices.
func NumberedList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
