package app

import (
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// Components contains the initialized application components. It gives
// the CLI layer controlled access to what it needs without exposing the
// full dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
