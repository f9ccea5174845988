// Package fsys provides the filesystem primitives used to discover themes
// and icon files.
package fsys

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/iconic/internal/core/ports"
)

var _ ports.ThemeFS = (*FS)(nil)

// FS implements ports.ThemeFS over the local filesystem.
type FS struct{}

// New creates a new FS.
func New() *FS {
	return &FS{}
}

// ReadFile returns the content of the file at path.
func (f *FS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FileExists reports whether path exists and is a regular file.
func (f *FS) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func (f *FS) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListFiles returns the base names of the regular files directly under dir,
// in directory order. Missing directories yield nil.
func (f *FS) ListFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// ListDirs returns the names of the subdirectories directly under dir.
// Missing directories yield nil.
func (f *FS) ListDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// WalkFiles yields the path of every regular file beneath root, depth-first
// in directory order. Unreadable subtrees are skipped.
func (f *FS) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are empty contributions
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// ModTime returns the last modification time of path, or the zero time when
// the path does not exist.
func (f *FS) ModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
