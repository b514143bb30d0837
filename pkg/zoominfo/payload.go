package zoominfo

// payload accumulates filter values keyed by their wire name for a search
// request body. Absent (nil) values are never written.
type payload map[string]any

func (p payload) setString(name string, v *string) {
	if v != nil {
		p[wireKey(name)] = *v
	}
}

func (p payload) setInt(name string, v *int) {
	if v != nil {
		p[wireKey(name)] = *v
	}
}

func (p payload) setBool(name string, v *bool) {
	if v != nil {
		p[wireKey(name)] = *v
	}
}

func (p payload) setStrings(name string, v []string) {
	if v != nil {
		p[wireKey(name)] = v
	}
}

// merge copies extra filters into the payload verbatim. Keys are deliberately
// not converted to wire casing, and a colliding key overwrites the named
// filter it shadows. Both behaviors are part of the wire contract.
func (p payload) merge(extra map[string]any) {
	for k, v := range extra {
		p[k] = v
	}
}

// String returns a pointer to v for use in optional query fields.
func String(v string) *string { return &v }

// Int returns a pointer to v for use in optional query fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v for use in optional query fields.
func Bool(v bool) *bool { return &v }
