// Package wiring registers all graft nodes for the installer.
//
// graft.AssertDepsValid cannot validate this graph: it infers dependency
// IDs from the package name of the interface in Dep[T], and every node
// here resolves interfaces from the shared ports package.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/markitdown-mcp/installer/internal/adapters/config"
	_ "github.com/markitdown-mcp/installer/internal/adapters/gobuild"
	_ "github.com/markitdown-mcp/installer/internal/adapters/install"
	_ "github.com/markitdown-mcp/installer/internal/adapters/logger"
	_ "github.com/markitdown-mcp/installer/internal/adapters/manifest"
	_ "github.com/markitdown-mcp/installer/internal/adapters/pkgmgr"
	_ "github.com/markitdown-mcp/installer/internal/adapters/shell"
	_ "github.com/markitdown-mcp/installer/internal/adapters/toolchain"
	// Register app nodes.
	_ "github.com/markitdown-mcp/installer/internal/app"
)
