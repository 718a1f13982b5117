// Package intent turns a natural-language question into a structured query
// descriptor: which collection to read, which fields to project, and which
// filters to apply.
package intent

// Descriptor is the resolved plan for one structured query.
type Descriptor struct {
	Collection  string                 `json:"collection"`
	Fields      []string               `json:"fields"`
	Filters     map[string]interface{} `json:"filters"`
	Explanation string                 `json:"explanation"`
	QueryType   string                 `json:"query_type"`
}

// Query type constants
const (
	QueryTypeListAll        = "list_all"
	QueryTypeSearchSpecific = "search_specific"
	QueryTypeFindByName     = "find_by_name"
	QueryTypeFindByDate     = "find_by_date"
	QueryTypeOther          = "other"
)

// AllowedCollections is the closed set of collections the analyzer may
// target. Anything outside it gets corrected before execution.
var AllowedCollections = map[string]bool{
	"doctors":       true,
	"clinic":        true,
	"appointments":  true,
	"slots":         true,
	"notices":       true,
	"slotexception": true,
}
