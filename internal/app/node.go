package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/markitdown-mcp/installer/internal/adapters/config"
	"github.com/markitdown-mcp/installer/internal/adapters/gobuild"
	"github.com/markitdown-mcp/installer/internal/adapters/install"
	"github.com/markitdown-mcp/installer/internal/adapters/logger"
	"github.com/markitdown-mcp/installer/internal/adapters/manifest"
	"github.com/markitdown-mcp/installer/internal/adapters/pkgmgr"
	"github.com/markitdown-mcp/installer/internal/adapters/toolchain"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			toolchain.NodeID,
			pkgmgr.NodeID,
			gobuild.NodeID,
			install.InstallerNodeID,
			install.DiagnosticsNodeID,
			manifest.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	gate, err := graft.Dep[ports.ToolchainGate](ctx)
	if err != nil {
		return nil, err
	}

	provisioner, err := graft.Dep[ports.Provisioner](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	diagnostics, err := graft.Dep[ports.Diagnostics](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, loader, gate, provisioner, builder, installer,
		diagnostics, store, domain.CurrentPlatform()), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
