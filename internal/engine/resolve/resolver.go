// Package resolve answers icon queries against an indexed snapshot,
// memoizing results and rebuilding the snapshot when the base directories
// change on disk.
package resolve

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/core/ports"
	"go.trai.ch/iconic/internal/engine/index"
	"golang.org/x/sync/singleflight"
)

// stalenessInterval bounds how often lookups re-stat the base directories.
// It trades syscall overhead for refresh latency: an external change can go
// unnoticed for up to this long.
const stalenessInterval = 5 * time.Second

// SnapshotBuilder rebuilds the snapshot on refresh.
type SnapshotBuilder interface {
	Build(ctx context.Context, themeName string) (index.Snapshot, error)
}

type cacheEntry struct {
	path  string
	found bool
}

// Resolver resolves icon queries for one loaded theme.
//
// A Resolver expects a single logical consumer: FindIcon mutates the query
// cache and the staleness clock without locking. Refresh alone is safe to
// call from other goroutines; concurrent refreshes collapse into one
// rebuild and the snapshot is swapped as a single value.
type Resolver struct {
	builder   SnapshotBuilder
	fs        ports.ThemeFS
	logger    ports.Logger
	tracer    ports.Tracer
	themeName string
	baseDirs  []string

	snapshot   index.Snapshot
	cache      map[uint64]cacheEntry
	lastLookup time.Time
	stale      atomic.Bool
	refreshes  singleflight.Group

	// now is replaceable for staleness tests.
	now func() time.Time
}

// New creates a Resolver over an already-built snapshot.
func New(
	builder SnapshotBuilder,
	fs ports.ThemeFS,
	logger ports.Logger,
	tracer ports.Tracer,
	themeName string,
	baseDirs []string,
	snapshot index.Snapshot,
) *Resolver {
	return &Resolver{
		builder:   builder,
		fs:        fs,
		logger:    logger,
		tracer:    tracer,
		themeName: themeName,
		baseDirs:  baseDirs,
		snapshot:  snapshot,
		cache:     make(map[uint64]cacheEntry),
		now:       time.Now,
	}
}

// ThemeName returns the name of the loaded theme.
func (r *Resolver) ThemeName() string {
	return r.themeName
}

// FindIcon resolves a query to an absolute file path. The second return is
// false when nothing matches anywhere; a miss is not an error.
func (r *Resolver) FindIcon(ctx context.Context, q domain.Query) (string, bool) {
	r.checkFreshness(ctx)

	key := q.Key()
	if entry, ok := r.cache[key]; ok {
		return entry.path, entry.found
	}

	ctx, end := r.tracer.Start(ctx, "resolver.lookup", ports.String("icon", q.Name))
	path, found := r.lookup(ctx, q)
	end(nil)

	// Misses are memoized too; repeating a hopeless query must not rescan
	// the hierarchy.
	r.cache[key] = cacheEntry{path: path, found: found}
	return path, found
}

// Refresh rebuilds the snapshot. Overlapping calls share a single rebuild.
// The query cache is dropped when the new snapshot lands: answers computed
// against the old tree may name files that no longer exist.
func (r *Resolver) Refresh(ctx context.Context) error {
	_, err, _ := r.refreshes.Do("refresh", func() (any, error) {
		snapshot, err := r.builder.Build(ctx, r.themeName)
		if err != nil {
			return nil, err
		}
		r.snapshot = snapshot
		r.cache = make(map[uint64]cacheEntry)
		return nil, nil
	})
	return err
}

// MarkStale flags the resolver so the next lookup refreshes regardless of
// the polling interval. Safe to call from watcher goroutines.
func (r *Resolver) MarkStale() {
	r.stale.Store(true)
}

// checkFreshness refreshes the snapshot when a base directory changed. The
// re-stat runs at most once per stalenessInterval unless MarkStale was
// called.
func (r *Resolver) checkFreshness(ctx context.Context) {
	now := r.now()
	forced := r.stale.Swap(false)
	polled := !r.lastLookup.IsZero() && now.Sub(r.lastLookup) > stalenessInterval
	r.lastLookup = now

	if !forced && !polled {
		return
	}
	if !forced && !r.baseDirsChanged() {
		return
	}
	if err := r.Refresh(ctx); err != nil {
		r.logger.Error(err)
	}
}

// baseDirsChanged compares current base directory mtimes against the
// snapshot's watermarks.
func (r *Resolver) baseDirsChanged() bool {
	for _, dir := range r.baseDirs {
		if index.Watermark(r.fs.ModTime(dir)) != r.snapshot.DirWatermarks[dir] {
			return true
		}
	}
	return false
}

// lookup runs the full search: absolute names short-circuit, then the
// theme hierarchy root-first, then the fallback index.
func (r *Resolver) lookup(_ context.Context, q domain.Query) (string, bool) {
	name := os.ExpandEnv(q.Name)
	if filepath.IsAbs(name) {
		// Absolute references bypass the index entirely.
		return name, true
	}

	for theme := range r.snapshot.Root.Traverse() {
		if path, ok := lookupTheme(theme, q); ok {
			return path, true
		}
	}

	for _, ext := range q.Extensions {
		if path, ok := r.snapshot.Fallback[q.Name+"."+ext]; ok {
			return path, true
		}
	}

	return "", false
}

// lookupTheme searches a single theme. An exact match wins immediately in
// extension priority order; otherwise the minimal-distance candidate of
// this theme is taken. Any candidate here ends the hierarchy walk: a child
// theme's worst candidate beats an ancestor's best.
func lookupTheme(theme *domain.Theme, q domain.Query) (string, bool) {
	for _, ext := range q.Extensions {
		filename := q.Name + "." + ext
		for _, file := range theme.Icons[filename] {
			if file.Descriptor.Matches(q.Size, q.Scale) {
				return filepath.Join(file.Dir, filename), true
			}
		}
	}

	bestDistance := math.MaxInt
	bestPath := ""
	found := false
	for _, ext := range q.Extensions {
		filename := q.Name + "." + ext
		for _, file := range theme.Icons[filename] {
			// Strict less-than: ties keep the first-seen candidate, so
			// extension priority breaks ties before discovery order.
			if d := file.Descriptor.Distance(q.Size, q.Scale); d < bestDistance {
				bestDistance = d
				bestPath = filepath.Join(file.Dir, filename)
				found = true
			}
		}
	}
	return bestPath, found
}
