// Package domain contains the core domain models and matching logic for
// icon theme resolution.
package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// BaseThemeName is the universally required base theme. Every theme
	// inherits from it, directly or indirectly.
	BaseThemeName = "hicolor"

	// ThemeIndexFile is the metadata file name at the root of a theme folder.
	ThemeIndexFile = "index.theme"
)

// Query describes one icon lookup: a name, the requested pixel size and
// display scale, and the acceptable file extensions in priority order.
type Query struct {
	Name       string
	Size       int
	Scale      int
	Extensions []string
}

// NewQuery creates a Query with the default scale of 1.
func NewQuery(name string, size int, extensions ...string) Query {
	return Query{
		Name:       name,
		Size:       size,
		Scale:      1,
		Extensions: extensions,
	}
}

// Key returns the cache identity of the query. Two queries share a key iff
// every field matches exactly, including extension order. Fields are length
// prefixed so concatenations cannot collide across field boundaries.
func (q Query) Key() uint64 {
	d := xxhash.New()
	writeField(d, q.Name)
	writeField(d, strconv.Itoa(q.Size))
	writeField(d, strconv.Itoa(q.Scale))
	for _, ext := range q.Extensions {
		writeField(d, ext)
	}
	return d.Sum64()
}

func writeField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(strconv.Itoa(len(s)))
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(s)
}
