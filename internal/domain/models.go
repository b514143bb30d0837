package domain

// Domain contains core models shared across the collector pipeline.

// Record is one entity (contact or company) extracted from a search response.
// Attributes carries the raw JSON object for that entity without any schema
// applied.
type Record struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	Attributes map[string]any `json:"attributes"`
}
