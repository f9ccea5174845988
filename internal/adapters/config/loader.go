// Package config resolves the ordered icon base directory list and theme
// selection from the environment and an optional config file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the optional config file under
// $XDG_CONFIG_HOME/iconic/.
const ConfigFileName = "config.yaml"

// Config is the resolved configuration.
type Config struct {
	// Theme is the preferred theme name; empty means the caller decides.
	Theme string
	// FallbackTheme is tried when Theme is not installed.
	FallbackTheme string
	// BaseDirs is the ordered base directory list, highest precedence first.
	BaseDirs []string
}

// Loader resolves configuration. Resolve reads the environment and config
// file fresh on every call; holding a Loader and calling Resolve again is
// the recomputation entry point.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Resolve computes the current configuration.
func (l *Loader) Resolve() (Config, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return Config{}, zerr.With(domain.ErrEnvParseFailed, "cause", err.Error())
	}
	e.applyDefaults()

	cfg := Config{
		FallbackTheme: domain.BaseThemeName,
		BaseDirs:      baseDirs(e),
	}

	file, err := l.readConfigFile(e)
	if err != nil {
		return Config{}, err
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.FallbackTheme != "" {
		cfg.FallbackTheme = file.FallbackTheme
	}
	if len(file.BaseDirs) > 0 {
		cfg.BaseDirs = file.BaseDirs
	}
	if len(file.ExtraDirs) > 0 {
		cfg.BaseDirs = append(append([]string{}, file.ExtraDirs...), cfg.BaseDirs...)
	}

	return cfg, nil
}

func (e *envConfig) applyDefaults() {
	if e.XDGDataHome == "" && e.Home != "" {
		e.XDGDataHome = filepath.Join(e.Home, ".local", "share")
	}
	if e.XDGConfigHome == "" && e.Home != "" {
		e.XDGConfigHome = filepath.Join(e.Home, ".config")
	}
	if len(e.XDGDataDirs) == 0 {
		e.XDGDataDirs = []string{"/usr/local/share", "/usr/share"}
	}
}

// baseDirs builds the search list in precedence order: user dirs before
// system dirs, with the legacy pixmaps directory last.
func baseDirs(e envConfig) []string {
	var dirs []string
	if e.Home != "" {
		dirs = append(dirs, filepath.Join(e.Home, ".icons"))
	}
	if e.XDGDataHome != "" {
		dirs = append(dirs, filepath.Join(e.XDGDataHome, "icons"))
	}
	for _, d := range e.XDGDataDirs {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "icons"))
		}
	}
	return append(dirs, "/usr/share/pixmaps")
}

func (l *Loader) readConfigFile(e envConfig) (fileConfig, error) {
	var out fileConfig
	if e.XDGConfigHome == "" {
		return out, nil
	}

	path := filepath.Join(e.XDGConfigHome, "iconic", ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, zerr.With(domain.ErrConfigReadFailed, "path", path)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, zerr.With(domain.ErrConfigParseFailed, "path", path)
	}
	return out, nil
}
