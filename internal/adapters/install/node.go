package install

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/adapters/logger"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

const (
	// InstallerNodeID is the graft node for the binary installer.
	InstallerNodeID graft.ID = "adapter.installer"
	// DiagnosticsNodeID is the graft node for the PATH diagnostics.
	DiagnosticsNodeID graft.ID = "adapter.diagnostics"
)

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log, domain.CurrentPlatform()), nil
		},
	})

	graft.Register(graft.Node[ports.Diagnostics]{
		ID:        DiagnosticsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Diagnostics, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiagnostics(log, domain.CurrentPlatform()), nil
		},
	})
}
