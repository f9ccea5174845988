package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconic/internal/adapters/config"
	"go.trai.ch/iconic/internal/adapters/fsys"
	"go.trai.ch/iconic/internal/adapters/inifile"
	"go.trai.ch/iconic/internal/adapters/logger"
	"go.trai.ch/iconic/internal/adapters/telemetry"
	"go.trai.ch/iconic/internal/adapters/watcher"
	"go.trai.ch/iconic/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles everything the CLI needs.
type Components struct {
	Service *Service
	Logger  ports.Logger
	Config  config.Config
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			fsys.NodeID,
			inifile.NodeID,
			config.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			fs, err := graft.Dep[ports.ThemeFS](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.SectionParser](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*config.Loader](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := loader.Resolve()
			if err != nil {
				return nil, err
			}

			return &Components{
				Service: NewService(cfg, fs, parser, w, log, tracer),
				Logger:  log,
				Config:  cfg,
			}, nil
		},
	})
}
