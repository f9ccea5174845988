// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/iconic/internal/adapters/config"
	_ "go.trai.ch/iconic/internal/adapters/fsys"
	_ "go.trai.ch/iconic/internal/adapters/inifile"
	_ "go.trai.ch/iconic/internal/adapters/logger"
	_ "go.trai.ch/iconic/internal/adapters/telemetry"
	_ "go.trai.ch/iconic/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/iconic/internal/app"
)
