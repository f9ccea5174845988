package domain

import (
	"iter"
	"slices"
)

// ThemeDescription is the parsed content of a theme's index.theme file.
type ThemeDescription struct {
	// Name is the theme's folder name, not its display name.
	Name string
	// Parents lists inherited theme names in declared order.
	Parents []string
	// Directories maps a subdirectory name (as declared in the Directories
	// key) to its parsed descriptor.
	Directories map[string]DirectoryDescriptor
}

// NewThemeDescription creates a description and applies the base theme
// invariant: unless the theme is hicolor itself, hicolor is appended to the
// parent list when absent, so the base theme is always reachable.
func NewThemeDescription(name string, parents []string) ThemeDescription {
	if name != BaseThemeName && !slices.Contains(parents, BaseThemeName) {
		parents = append(parents, BaseThemeName)
	}
	return ThemeDescription{
		Name:        name,
		Parents:     parents,
		Directories: make(map[string]DirectoryDescriptor),
	}
}

// IconFile is one candidate location of an icon: the absolute directory
// holding the file plus the descriptor of the theme subdirectory it came
// from.
type IconFile struct {
	Dir        string
	Descriptor DirectoryDescriptor
}

// FallbackIndex maps a loose icon filename to its absolute path. Entries
// are first-seen-wins across base directories in precedence order.
type FallbackIndex map[string]string

// Theme is a runtime node of the inheritance graph. Parents form a DAG that
// may share ancestors; traversal guards against cycles with a visited set.
// A Theme is owned by the resolver instance that built it and is never
// mutated after indexing.
type Theme struct {
	Name        string
	Description ThemeDescription
	Parents     []*Theme
	// Icons maps an icon filename (base name with extension) to its
	// candidate locations in file-discovery order.
	Icons map[string][]IconFile
}

// NewTheme creates an empty theme node for the given description.
func NewTheme(desc ThemeDescription) *Theme {
	return &Theme{
		Name:        desc.Name,
		Description: desc,
		Icons:       make(map[string][]IconFile),
	}
}

// AddIcon appends a candidate location for the given filename.
func (t *Theme) AddIcon(filename, dir string, desc DirectoryDescriptor) {
	t.Icons[filename] = append(t.Icons[filename], IconFile{Dir: dir, Descriptor: desc})
}

// Traverse yields the theme and its ancestors depth-first: the theme
// itself, then each parent's subtree in declared order. Every theme is
// yielded at most once, so diamond inheritance costs nothing extra and
// cyclic parent links terminate.
func (t *Theme) Traverse() iter.Seq[*Theme] {
	return func(yield func(*Theme) bool) {
		visited := make(map[string]bool)
		var visit func(node *Theme) bool
		visit = func(node *Theme) bool {
			if visited[node.Name] {
				return true
			}
			visited[node.Name] = true
			if !yield(node) {
				return false
			}
			for _, parent := range node.Parents {
				if !visit(parent) {
					return false
				}
			}
			return true
		}
		visit(t)
	}
}
