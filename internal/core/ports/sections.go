package ports

import (
	"strconv"
	"strings"
)

// Value is a raw string value from a theme metadata file.
type Value string

// Int parses the value as an integer. The second return is false when the
// value is absent or not a number.
func (v Value) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(v)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// List splits the value on the given separator, trimming whitespace and
// dropping empty elements. Order is preserved.
func (v Value) List(sep string) []string {
	var out []string
	for _, part := range strings.Split(string(v), sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Section is one named section of a metadata file with its keys in file order.
type Section struct {
	Name   string
	Keys   []string
	Values map[string]Value
}

// Get returns the value for a key.
func (s Section) Get(key string) (Value, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Sections is an ordered list of metadata sections.
type Sections []Section

// Find returns the first section with the given name.
func (s Sections) Find(name string) (Section, bool) {
	for _, sec := range s {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// SectionParser parses INI-style metadata files into ordered sections.
//
//go:generate mockgen -source=sections.go -destination=mocks/mock_sections.go -package=mocks
type SectionParser interface {
	// Parse parses the given file content. Section and key order follow the
	// file.
	Parse(data []byte) (Sections, error)
}
