package zoominfo

import "strings"

// wireKey converts a snake_case filter name into the lowerCamelCase key the
// API expects on the wire: the first part is kept unchanged, every following
// part gets its first character upper-cased and the rest left as-is.
// Total on any input; empty strings and single-part names come back unchanged.
func wireKey(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) == 1 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
