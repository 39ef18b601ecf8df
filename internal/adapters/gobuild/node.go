package gobuild

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/adapters/logger"
	"github.com/markitdown-mcp/installer/internal/adapters/shell"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// NodeID is the graft node for the builder.
const NodeID graft.ID = "adapter.builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, log, domain.CurrentPlatform()), nil
		},
	})
}
