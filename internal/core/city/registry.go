package city

import (
	"strings"
)

// Registry is an ordered list of city names, unique under case-insensitive
// comparison. Names are stored trimmed, with the casing they were added with.
// Registry is not safe for concurrent use; UseCase guards it.
type Registry struct {
	names []string
}

// NewRegistry builds a registry from names, dropping blanks and duplicates
func NewRegistry(names ...string) *Registry {
	r := &Registry{names: make([]string, 0, len(names))}
	for _, name := range names {
		r.Add(name)
	}
	return r
}

// Normalize trims surrounding whitespace from a city name
func Normalize(name string) string {
	return strings.TrimSpace(name)
}

// Add appends name when it is non-blank and not already present.
// Returns true when the registry changed.
func (r *Registry) Add(name string) bool {
	name = Normalize(name)
	if name == "" || r.indexOf(name) >= 0 {
		return false
	}
	r.names = append(r.names, name)
	return true
}

// Remove deletes the entry matching name case-insensitively.
// Returns true when the registry changed.
func (r *Registry) Remove(name string) bool {
	idx := r.indexOf(Normalize(name))
	if idx < 0 {
		return false
	}
	r.names = append(r.names[:idx], r.names[idx+1:]...)
	return true
}

// Find returns the stored spelling of name
func (r *Registry) Find(name string) (string, bool) {
	idx := r.indexOf(Normalize(name))
	if idx < 0 {
		return "", false
	}
	return r.names[idx], true
}

// Contains reports whether name is present, ignoring case
func (r *Registry) Contains(name string) bool {
	return r.indexOf(Normalize(name)) >= 0
}

// List returns a copy of the names in insertion order
func (r *Registry) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.names)
}

func (r *Registry) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, existing := range r.names {
		if strings.EqualFold(existing, name) {
			return i
		}
	}
	return -1
}
