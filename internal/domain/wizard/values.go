package wizard

import (
	"maps"
	"sort"
	"strings"
)

// Values is an immutable mapping from dotted field path to value. Every
// setter returns a new Values; the receiver is never modified.
type Values struct {
	m map[string]any
}

// NewValues builds a Values from a flat path map. Input values are stored
// as-is; callers outside the package go through State.Set for coercion.
func NewValues(m map[string]any) Values {
	return Values{m: maps.Clone(m)}
}

// With returns a copy of v with path set to value.
func (v Values) With(path string, value any) Values {
	next := make(map[string]any, len(v.m)+1)
	maps.Copy(next, v.m)
	next[path] = value
	return Values{m: next}
}

// Get returns the raw value at path.
func (v Values) Get(path string) (any, bool) {
	val, ok := v.m[path]
	return val, ok
}

// Has reports whether a non-nil value is set at path.
func (v Values) Has(path string) bool {
	val, ok := v.m[path]
	return ok && val != nil
}

// String returns the string at path, or "".
func (v Values) String(path string) string {
	s, _ := v.m[path].(string)
	return s
}

// Int returns the integer at path.
func (v Values) Int(path string) (int, bool) {
	n, ok := v.m[path].(int)
	return n, ok
}

// Bool returns the boolean at path, false when unset.
func (v Values) Bool(path string) bool {
	b, _ := v.m[path].(bool)
	return b
}

// Strings returns a copy of the string list at path.
func (v Values) Strings(path string) []string {
	s, _ := v.m[path].([]string)
	return append([]string(nil), s...)
}

// Len returns the number of set paths.
func (v Values) Len() int {
	return len(v.m)
}

// Paths returns the set paths in sorted order.
func (v Values) Paths() []string {
	paths := make([]string, 0, len(v.m))
	for p := range v.m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Flat returns a copy of the underlying path map.
func (v Values) Flat() map[string]any {
	return maps.Clone(v.m)
}

// Nested projects dotted paths into nested maps, e.g. "owner.email"
// becomes {"owner": {"email": ...}}.
func (v Values) Nested() map[string]any {
	out := make(map[string]any, len(v.m))
	for path, val := range v.m {
		parts := strings.Split(path, ".")
		cur := out
		for _, part := range parts[:len(parts)-1] {
			child, ok := cur[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				cur[part] = child
			}
			cur = child
		}
		cur[parts[len(parts)-1]] = val
	}
	return out
}
