package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconic/internal/adapters/config"
	"go.trai.ch/iconic/internal/adapters/fsys"
	"go.trai.ch/iconic/internal/adapters/inifile"
	"go.trai.ch/iconic/internal/adapters/telemetry"
	"go.trai.ch/iconic/internal/adapters/watcher"
	"go.trai.ch/iconic/internal/app"
	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/core/ports"
)

type testLogger struct{}

func (testLogger) Debug(string) {}
func (testLogger) Info(string)  {}
func (testLogger) Warn(string)  {}
func (testLogger) Error(error)  {}

const themeIndex = `[Icon Theme]
Name=Theme
Directories=48x48/apps

[48x48/apps]
Size=48
Type=Fixed
`

func writeTheme(t *testing.T, base, name string, files ...string) {
	t.Helper()
	dir := filepath.Join(base, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.theme"), []byte(themeIndex), 0o644))
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("icon"), 0o644))
	}
}

func newService(cfg config.Config, w ports.Watcher) *app.Service {
	return app.NewService(cfg, fsys.New(), inifile.NewParser(), w, testLogger{}, telemetry.NewNoop())
}

func TestService_LoadTheme_Selection(t *testing.T) {
	base := t.TempDir()
	writeTheme(t, base, "Foo")
	writeTheme(t, base, "Bar")
	writeTheme(t, base, "hicolor")

	svc := newService(config.Config{FallbackTheme: "hicolor", BaseDirs: []string{base}}, nil)

	tests := []struct {
		name     string
		theme    string
		fallback string
		want     string
	}{
		{"requested theme installed", "Foo", "Bar", "Foo"},
		{"fallback when requested missing", "Ghost", "Bar", "Bar"},
		{"hicolor when both missing", "Ghost", "Phantom", "hicolor"},
		{"configured fallback when arguments empty", "", "", "hicolor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := svc.LoadTheme(t.Context(), tt.theme, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ThemeName())
		})
	}
}

func TestService_LoadTheme_NothingInstalled(t *testing.T) {
	// LoadTheme never fails on missing themes: loose files in the base
	// directories stay reachable through the fallback index.
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "loose.png"), []byte("x"), 0o644))

	svc := newService(config.Config{FallbackTheme: "hicolor", BaseDirs: []string{base}}, nil)

	r, err := svc.LoadTheme(t.Context(), "Ghost", "")
	require.NoError(t, err)
	assert.Equal(t, "hicolor", r.ThemeName())

	results, err := svc.Lookup(t.Context(), []string{"loose"}, app.LookupOptions{
		Size:       48,
		Extensions: []string{"png"},
		Theme:      "Ghost",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "loose.png"), results["loose"])
}

func TestService_Lookup(t *testing.T) {
	base := t.TempDir()
	writeTheme(t, base, "Foo", "48x48/apps/bar.png")

	svc := newService(config.Config{Theme: "Foo", FallbackTheme: "hicolor", BaseDirs: []string{base}}, nil)

	results, err := svc.Lookup(t.Context(), []string{"bar", "absent"}, app.LookupOptions{
		Size:       48,
		Extensions: []string{"png"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "Foo", "48x48", "apps", "bar.png"), results["bar"])
	assert.Empty(t, results["absent"], "a miss maps to an empty path")
}

func TestService_InstalledThemes(t *testing.T) {
	base := t.TempDir()
	writeTheme(t, base, "Foo")
	writeTheme(t, base, "hicolor")

	svc := newService(config.Config{BaseDirs: []string{base}}, nil)
	assert.Equal(t, []string{"Foo", "hicolor"}, svc.InstalledThemes())
}

func TestService_AutoRefresh(t *testing.T) {
	base := t.TempDir()
	writeTheme(t, base, "Foo")

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	svc := newService(config.Config{Theme: "Foo", FallbackTheme: "hicolor", BaseDirs: []string{base}}, w)

	r, err := svc.LoadTheme(t.Context(), "", "")
	require.NoError(t, err)
	_, ok := r.FindIcon(t.Context(), domain.NewQuery("bar", 48, "png"))
	require.False(t, ok)

	changed := make(chan struct{}, 1)
	require.NoError(t, svc.AutoRefresh(t.Context(), r, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	writeTheme(t, base, "Foo", "48x48/apps/bar.png")

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the change")
	}

	assert.Eventually(t, func() bool {
		_, ok := r.FindIcon(t.Context(), domain.NewQuery("bar", 48, "png"))
		return ok
	}, 5*time.Second, 50*time.Millisecond, "invalidation must surface the new icon")
}
