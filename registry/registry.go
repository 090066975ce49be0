// Package registry maps variable names to matrix column indices.
//
// Columns are assigned in first-seen order starting at 0, are never reused,
// and never change once assigned, so the same name always lands in the same
// column across every equation of a document. Names are case-sensitive.
//
// A Registry is owned by the document driver, not by the parser: resetting
// a parser leaves the registry untouched.
package registry

import "sort"

// Registry is an insertion-ordered name → column mapping.
// The zero value is ready to use. Not safe for concurrent mutation.
type Registry struct {
	index map[string]int
	names []string // column → name
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Index returns the column for name, assigning the next free column on first
// sight. added reports whether this call registered the name.
func (r *Registry) Index(name string) (col int, added bool) {
	if c, ok := r.index[name]; ok {
		return c, false
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	col = len(r.names)
	r.index[name] = col
	r.names = append(r.names, name)

	return col, true
}

// Lookup returns the column of a known name.
func (r *Registry) Lookup(name string) (int, bool) {
	c, ok := r.index[name]
	return c, ok
}

// Name returns the name registered at column col, or "" when out of range.
func (r *Registry) Name(col int) string {
	if col < 0 || col >= len(r.names) {
		return ""
	}
	return r.names[col]
}

// Len returns the number of distinct names registered so far.
func (r *Registry) Len() int { return len(r.names) }

// Names returns the registered names in column order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Sorted returns the registered names in lexicographic order.
func (r *Registry) Sorted() []string {
	out := r.Names()
	sort.Strings(out)

	return out
}
