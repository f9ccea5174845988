package ports

import (
	"iter"
	"time"
)

// ThemeFS provides the filesystem primitives the indexer needs. Implementations
// must treat missing paths as empty results, not errors; the icon layout is
// best-effort by nature.
//
//go:generate mockgen -source=themefs.go -destination=mocks/mock_themefs.go -package=mocks
type ThemeFS interface {
	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)

	// FileExists reports whether path exists and is a regular file.
	FileExists(path string) bool

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool

	// ListFiles returns the base names of the regular files directly under
	// dir, in directory order. A missing directory yields nil.
	ListFiles(dir string) []string

	// ListDirs returns the names of the subdirectories directly under dir.
	// A missing directory yields nil.
	ListDirs(dir string) []string

	// WalkFiles yields the path of every regular file beneath root,
	// depth-first in directory order. A missing root yields nothing.
	WalkFiles(root string) iter.Seq[string]

	// ModTime returns the last modification time of path. A missing path
	// reports the zero time.
	ModTime(path string) time.Time
}
