// Package index builds the searchable snapshot of an icon theme: the
// inheritance graph with its per-theme icon maps, the fallback index of
// loose files, and the base directory watermarks used for staleness checks.
package index

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Snapshot is one immutable build result. Refreshes replace it wholesale;
// nothing is mutated incrementally.
type Snapshot struct {
	// Root is the entry point of the theme inheritance graph.
	Root *domain.Theme
	// Fallback maps loose icon filenames to absolute paths.
	Fallback domain.FallbackIndex
	// DirWatermarks records each base directory's mtime at build time.
	DirWatermarks map[string]int64
}

// Watermark converts a directory mtime to its stored watermark. Missing
// directories (zero time) map to zero so they compare equal until created.
func Watermark(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

// Indexer builds snapshots from the configured base directories.
type Indexer struct {
	fs       ports.ThemeFS
	parser   ports.SectionParser
	logger   ports.Logger
	tracer   ports.Tracer
	baseDirs []string
}

// New creates an Indexer over the given base directories, highest
// precedence first.
func New(fs ports.ThemeFS, parser ports.SectionParser, logger ports.Logger, tracer ports.Tracer, baseDirs []string) *Indexer {
	return &Indexer{
		fs:       fs,
		parser:   parser,
		logger:   logger,
		tracer:   tracer,
		baseDirs: baseDirs,
	}
}

// BaseDirs returns the base directory list the indexer scans.
func (ix *Indexer) BaseDirs() []string {
	return ix.baseDirs
}

// InstalledThemes returns every base directory subfolder that carries an
// index.theme file, deduplicated and sorted.
func (ix *Indexer) InstalledThemes() []string {
	seen := make(map[string]bool)
	var names []string
	for _, base := range ix.baseDirs {
		for _, dir := range ix.fs.ListDirs(base) {
			if seen[dir] {
				continue
			}
			if ix.fs.FileExists(filepath.Join(base, dir, domain.ThemeIndexFile)) {
				seen[dir] = true
				names = append(names, dir)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Build constructs a snapshot for the given theme name. Graph resolution
// and icon indexing run on a spawned worker goroutine; the fallback index
// and watermarks are computed on the caller's goroutine meanwhile. The two
// halves only communicate through the result channel.
func (ix *Indexer) Build(ctx context.Context, themeName string) (Snapshot, error) {
	ctx, end := ix.tracer.Start(ctx, "index.build", ports.String("theme", themeName))
	defer end(nil)

	rootCh := make(chan *domain.Theme, 1)
	go func() {
		root, err := ix.resolveGraph(themeName, make(map[string]bool))
		if err != nil {
			// The selected theme itself is unusable; resolution degrades
			// to an empty theme so lookups still reach the fallback index.
			ix.logger.Warn(fmt.Sprintf("theme %q has no usable index, continuing with an empty theme", themeName))
			root = domain.NewTheme(domain.NewThemeDescription(themeName, nil))
		}
		ix.indexIcons(root, make(map[string]bool))
		rootCh <- root
	}()

	fallback := ix.BuildFallback()
	watermarks := ix.DirWatermarks()

	select {
	case <-ctx.Done():
		return Snapshot{}, zerr.With(domain.ErrIndexBuildAborted, "theme", themeName)
	case root := <-rootCh:
		return Snapshot{
			Root:          root,
			Fallback:      fallback,
			DirWatermarks: watermarks,
		}, nil
	}
}

// ParseDescription reads and parses a theme's index.theme from the first
// base directory that has it.
func (ix *Indexer) ParseDescription(themeName string) (domain.ThemeDescription, error) {
	var data []byte
	found := false
	for _, base := range ix.baseDirs {
		content, err := ix.fs.ReadFile(filepath.Join(base, themeName, domain.ThemeIndexFile))
		if err == nil {
			data = content
			found = true
			break
		}
	}
	if !found {
		return domain.ThemeDescription{}, zerr.With(zerr.With(domain.ErrInvalidTheme, "theme", themeName), "reason", "no index.theme in any base directory")
	}

	sections, err := ix.parser.Parse(data)
	if err != nil {
		return domain.ThemeDescription{}, zerr.With(zerr.With(domain.ErrInvalidTheme, "theme", themeName), "reason", err.Error())
	}

	themeSection, ok := sections.Find("Icon Theme")
	if !ok {
		return domain.ThemeDescription{}, zerr.With(zerr.With(domain.ErrInvalidTheme, "theme", themeName), "reason", "missing [Icon Theme] section")
	}

	dirsValue, ok := themeSection.Get("Directories")
	if !ok {
		return domain.ThemeDescription{}, zerr.With(domain.ErrMissingDirectories, "theme", themeName)
	}

	var parents []string
	if inherits, ok := themeSection.Get("Inherits"); ok {
		parents = inherits.List(",")
	}

	desc := domain.NewThemeDescription(themeName, parents)
	for _, dirName := range dirsValue.List(",") {
		section, ok := sections.Find(dirName)
		if !ok {
			continue
		}
		descriptor, ok := parseDescriptor(dirName, section)
		if !ok {
			ix.logger.Debug(fmt.Sprintf("theme %q: skipping directory %q without a usable Size", themeName, dirName))
			continue
		}
		desc.Directories[dirName] = descriptor
	}
	return desc, nil
}

// parseDescriptor builds a directory descriptor from its section. A
// missing or unparsable Size invalidates just this descriptor.
func parseDescriptor(dirName string, section ports.Section) (domain.DirectoryDescriptor, bool) {
	sizeValue, ok := section.Get("Size")
	if !ok {
		return domain.DirectoryDescriptor{}, false
	}
	size, ok := sizeValue.Int()
	if !ok {
		return domain.DirectoryDescriptor{}, false
	}

	d := domain.NewDirectoryDescriptor(dirName, size)
	if v, ok := section.Get("Type"); ok {
		d.Type = domain.ParseDirType(string(v))
	}
	if v, ok := section.Get("Scale"); ok {
		if n, ok := v.Int(); ok {
			d.Scale = n
		}
	}
	if v, ok := section.Get("MinSize"); ok {
		if n, ok := v.Int(); ok {
			d.MinSize = n
		}
	}
	if v, ok := section.Get("MaxSize"); ok {
		if n, ok := v.Int(); ok {
			d.MaxSize = n
		}
	}
	if v, ok := section.Get("Threshold"); ok {
		if n, ok := v.Int(); ok {
			d.Threshold = n
		}
	}
	return d, true
}

// resolveGraph parses themeName and its parents into theme nodes,
// depth-first in declared order. inProgress carries the names currently
// being resolved on this branch; a recurring name stops that branch instead
// of recursing forever. Invalid parents are pruned silently.
func (ix *Indexer) resolveGraph(themeName string, inProgress map[string]bool) (*domain.Theme, error) {
	desc, err := ix.ParseDescription(themeName)
	if err != nil {
		return nil, err
	}

	inProgress[themeName] = true
	defer delete(inProgress, themeName)

	theme := domain.NewTheme(desc)
	for _, parentName := range desc.Parents {
		if inProgress[parentName] {
			continue
		}
		parent, err := ix.resolveGraph(parentName, inProgress)
		if err != nil {
			ix.logger.Debug(fmt.Sprintf("theme %q: pruning invalid parent %q", themeName, parentName))
			continue
		}
		theme.Parents = append(theme.Parents, parent)
	}
	return theme, nil
}

// indexIcons scans the theme's folders under every base directory and fills
// its icon map, then does the same for every parent. Each theme's map is
// populated independently; parents are never merged into children.
func (ix *Indexer) indexIcons(theme *domain.Theme, visited map[string]bool) {
	if visited[theme.Name] {
		return
	}
	visited[theme.Name] = true

	for _, base := range ix.baseDirs {
		themeDir := filepath.Join(base, theme.Name)
		if !ix.fs.DirExists(themeDir) {
			continue
		}
		for path := range ix.fs.WalkFiles(themeDir) {
			rel, err := filepath.Rel(themeDir, filepath.Dir(path))
			if err != nil {
				continue
			}
			descriptor, ok := theme.Description.Directories[filepath.ToSlash(rel)]
			if !ok {
				// Files outside declared subdirectories are ignored.
				continue
			}
			theme.AddIcon(filepath.Base(path), filepath.Dir(path), descriptor)
		}
	}

	for _, parent := range theme.Parents {
		ix.indexIcons(parent, visited)
	}
}

// BuildFallback scans the immediate contents of every base directory for
// loose icon files. First occurrence wins across directories.
func (ix *Indexer) BuildFallback() domain.FallbackIndex {
	fallback := make(domain.FallbackIndex)
	for _, base := range ix.baseDirs {
		for _, name := range ix.fs.ListFiles(base) {
			if _, ok := fallback[name]; !ok {
				fallback[name] = filepath.Join(base, name)
			}
		}
	}
	return fallback
}

// DirWatermarks records the current mtime watermark of every base directory.
func (ix *Indexer) DirWatermarks() map[string]int64 {
	marks := make(map[string]int64, len(ix.baseDirs))
	for _, base := range ix.baseDirs {
		marks[base] = Watermark(ix.fs.ModTime(base))
	}
	return marks
}
