package utils

import "strings"

// SplitText splits a document into chunks of roughly chunkSize characters,
// preferring to break at sentence boundaries so no chunk starts mid-thought.
// A single sentence longer than chunkSize is emitted as its own oversized
// chunk rather than being cut.
func SplitText(text string, chunkSize int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	sentences := splitSentences(text)

	var chunks []string
	var current strings.Builder
	for _, s := range sentences {
		if current.Len() > 0 && current.Len()+len(s)+1 > chunkSize {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(s)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			// A period followed by a digit is part of a number, not a break.
			if r == '.' && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
				continue
			}
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
