// Package app implements the application layer for iconic.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/iconic/internal/adapters/config"
	"go.trai.ch/iconic/internal/adapters/watcher"
	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/core/ports"
	"go.trai.ch/iconic/internal/engine/index"
	"go.trai.ch/iconic/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// debounceWindow coalesces bursts of file system events into one
// invalidation. Package managers touch hundreds of files per install.
const debounceWindow = 200 * time.Millisecond

// Service is the application entry point: it selects and loads themes and
// answers icon lookups over them.
type Service struct {
	cfg     config.Config
	fs      ports.ThemeFS
	watcher ports.Watcher
	logger  ports.Logger
	tracer  ports.Tracer
	indexer *index.Indexer
}

// NewService creates a Service over the resolved configuration.
func NewService(
	cfg config.Config,
	fs ports.ThemeFS,
	parser ports.SectionParser,
	w ports.Watcher,
	logger ports.Logger,
	tracer ports.Tracer,
) *Service {
	return &Service{
		cfg:     cfg,
		fs:      fs,
		watcher: w,
		logger:  logger,
		tracer:  tracer,
		indexer: index.New(fs, parser, logger, tracer, cfg.BaseDirs),
	}
}

// Config returns the configuration the service was built with.
func (s *Service) Config() config.Config {
	return s.cfg
}

// InstalledThemes lists every theme installed in the base directories.
func (s *Service) InstalledThemes() []string {
	return s.indexer.InstalledThemes()
}

// LoadTheme indexes a theme and returns a resolver over it. Selection walks
// requested, then fallback, then hicolor, taking the first installed name;
// when none is installed the last candidate is loaded anyway so lookups
// still reach the loose-file fallback index. Empty arguments defer to the
// configuration.
func (s *Service) LoadTheme(ctx context.Context, theme, fallback string) (*resolve.Resolver, error) {
	if theme == "" {
		theme = s.cfg.Theme
	}
	if fallback == "" {
		fallback = s.cfg.FallbackTheme
	}

	selected := s.selectTheme(theme, fallback)
	snapshot, err := s.indexer.Build(ctx, selected)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to index theme")
	}
	return resolve.New(s.indexer, s.fs, s.logger, s.tracer, selected, s.cfg.BaseDirs, snapshot), nil
}

func (s *Service) selectTheme(theme, fallback string) string {
	installed := make(map[string]bool)
	for _, name := range s.indexer.InstalledThemes() {
		installed[name] = true
	}

	candidates := []string{theme, fallback, domain.BaseThemeName}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if installed[name] {
			return name
		}
		s.logger.Debug(fmt.Sprintf("theme %q is not installed", name))
	}
	return domain.BaseThemeName
}

// LookupOptions parameterizes a CLI lookup.
type LookupOptions struct {
	Size          int
	Scale         int
	Extensions    []string
	Theme         string
	FallbackTheme string
}

// Lookup loads the selected theme and resolves each icon name against it.
// The result maps every requested name; unresolved names map to "".
func (s *Service) Lookup(ctx context.Context, names []string, opts LookupOptions) (map[string]string, error) {
	r, err := s.LoadTheme(ctx, opts.Theme, opts.FallbackTheme)
	if err != nil {
		return nil, err
	}

	results := make(map[string]string, len(names))
	for _, name := range names {
		q := domain.NewQuery(name, opts.Size, opts.Extensions...)
		if opts.Scale > 0 {
			q.Scale = opts.Scale
		}
		path, ok := r.FindIcon(ctx, q)
		if !ok {
			results[name] = ""
			continue
		}
		results[name] = path
	}
	return results, nil
}

// AutoRefresh watches the base directories and marks the resolver stale
// whenever they change, so the next lookup rebuilds the snapshot. onChange,
// if non-nil, runs after each invalidation. The watch ends when ctx is
// cancelled.
func (s *Service) AutoRefresh(ctx context.Context, r *resolve.Resolver, onChange func()) error {
	deb := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		s.logger.Debug(fmt.Sprintf("%d path(s) changed, invalidating snapshot", len(paths)))
		r.MarkStale()
		if onChange != nil {
			onChange()
		}
	})

	if err := s.watcher.Start(ctx, s.cfg.BaseDirs); err != nil {
		return err
	}

	go func() {
		defer func() { _ = s.watcher.Stop() }()
		for event := range s.watcher.Events() {
			deb.Add(event.Path)
		}
		deb.Flush()
	}()

	return nil
}
