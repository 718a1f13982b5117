package store

import "fmt"

// Record is an opaque row/document returned by a structured store.
// The core enforces no schema; consumers must treat every field as optional.
type Record map[string]interface{}

// Str returns the first non-empty string value among the given keys.
// Non-string scalars are stringified. Missing keys yield "".
func (r Record) Str(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if s != "" {
				return s
			}
			continue
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Has reports whether any of the given keys is present with a non-nil value.
func (r Record) Has(keys ...string) bool {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return true
		}
	}
	return false
}
