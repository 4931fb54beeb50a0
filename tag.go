package htmltext

import "strings"

// TagSet is a set of HTML tag names with case-insensitive membership.
// Names are normalized to lowercase once at construction so per-event
// lookups are a single map access.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from the given names.
func NewTagSet(names ...string) TagSet {
	s := make(TagSet, len(names))
	for _, name := range names {
		s[strings.ToLower(name)] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the tag name, ignoring case.
func (s TagSet) Contains(name string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Intersect returns the names present in both sets, in no particular order.
func (s TagSet) Intersect(other TagSet) []string {
	var names []string
	for name := range s {
		if other.Contains(name) {
			names = append(names, name)
		}
	}
	return names
}

// Names returns the members of the set, in no particular order.
func (s TagSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}
