package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTheme is returned when a theme's index.theme file is missing
	// or does not contain a usable [Icon Theme] section.
	ErrInvalidTheme = zerr.New("invalid theme")

	// ErrMissingDirectories is returned when the [Icon Theme] section has no
	// Directories key.
	ErrMissingDirectories = zerr.New("theme declares no directories")

	// ErrSectionParseFailed is returned when an index.theme file cannot be
	// parsed into sections.
	ErrSectionParseFailed = zerr.New("failed to parse theme sections")

	// ErrThemeIndexRead is returned when an index.theme file cannot be read.
	ErrThemeIndexRead = zerr.New("failed to read theme index file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvParseFailed is returned when environment configuration cannot be parsed.
	ErrEnvParseFailed = zerr.New("failed to parse environment configuration")

	// ErrWatcherStart is returned when the base directory watcher fails to start.
	ErrWatcherStart = zerr.New("failed to start base directory watcher")

	// ErrIndexBuildAborted is returned when index construction is cancelled
	// before the worker delivers a snapshot.
	ErrIndexBuildAborted = zerr.New("index build aborted")

	// ErrIconNotFound is returned by the CLI when a requested icon resolves
	// to nothing anywhere. Library lookups report a miss as a boolean.
	ErrIconNotFound = zerr.New("icon not found")
)
