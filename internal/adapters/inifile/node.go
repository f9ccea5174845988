package inifile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconic/internal/core/ports"
)

// NodeID is the unique identifier for the section parser Graft node.
const NodeID graft.ID = "adapter.section_parser"

func init() {
	graft.Register(graft.Node[ports.SectionParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SectionParser, error) {
			return NewParser(), nil
		},
	})
}
