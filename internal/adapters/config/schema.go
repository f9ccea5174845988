package config

// fileConfig is the YAML schema of the optional config file
// ($XDG_CONFIG_HOME/iconic/config.yaml).
type fileConfig struct {
	// Theme is the preferred theme name.
	Theme string `yaml:"theme"`
	// FallbackTheme is tried when the preferred theme is not installed.
	FallbackTheme string `yaml:"fallback_theme"`
	// BaseDirs replaces the XDG-derived base directory list when set.
	BaseDirs []string `yaml:"base_dirs"`
	// ExtraDirs are prepended to the base directory list.
	ExtraDirs []string `yaml:"extra_dirs"`
}

// envConfig captures the XDG environment variables the base directory list
// derives from.
type envConfig struct {
	Home          string   `env:"HOME"`
	XDGDataHome   string   `env:"XDG_DATA_HOME"`
	XDGDataDirs   []string `env:"XDG_DATA_DIRS" envSeparator:":"`
	XDGConfigHome string   `env:"XDG_CONFIG_HOME"`
}
