package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// NodeID is the graft node for the install manifest store.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestStore, error) {
			return NewStore(), nil
		},
	})
}
