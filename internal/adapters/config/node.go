package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// NodeID is the graft node for the defaults file loader.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewFileConfigLoader(), nil
		},
	})
}
