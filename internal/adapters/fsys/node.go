package fsys

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconic/internal/core/ports"
)

// NodeID is the unique identifier for the filesystem Graft node.
const NodeID graft.ID = "adapter.theme_fs"

func init() {
	graft.Register(graft.Node[ports.ThemeFS]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ThemeFS, error) {
			return New(), nil
		},
	})
}
