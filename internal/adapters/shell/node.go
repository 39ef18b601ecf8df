package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

const (
	// RunnerNodeID is the graft node for the process runner.
	RunnerNodeID graft.ID = "adapter.runner"
	// LocatorNodeID is the graft node for the tool locator.
	LocatorNodeID graft.ID = "adapter.locator"
)

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Runner, error) {
			return NewRunner(), nil
		},
	})

	graft.Register(graft.Node[ports.Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Locator, error) {
			return NewLocator(), nil
		},
	})
}
