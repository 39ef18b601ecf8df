package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// NodeID is the graft node for the console logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
