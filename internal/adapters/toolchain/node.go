package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/adapters/logger"
	"github.com/markitdown-mcp/installer/internal/adapters/shell"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// NodeID is the graft node for the toolchain gate.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolchainGate]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, shell.LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainGate, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGate(runner, locator, log), nil
		},
	})
}
