package pkgmgr

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/adapters/logger"
	"github.com/markitdown-mcp/installer/internal/adapters/shell"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// NodeID is the graft node for the OCR provisioner.
const NodeID graft.ID = "adapter.provisioner"

func init() {
	graft.Register(graft.Node[ports.Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, shell.LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Provisioner, error) {
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
			return NewProvisioner(runner, locator, log), nil
		},
	})
}
