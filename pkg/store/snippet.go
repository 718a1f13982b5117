package store

// Snippet is a retrieved chunk of uploaded document text with its
// similarity score against the query vector.
type Snippet struct {
	Text   string  `json:"text"`
	Score  float32 `json:"score"`
	Source string  `json:"source"`
}
