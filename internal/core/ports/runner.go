// Package ports defines the core interfaces for the installer.
package ports

import (
	"context"

	"github.com/markitdown-mcp/installer/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// Runner executes external commands synchronously with captured output.
type Runner interface {
	// Run executes the command described by spec and returns its result.
	//
	// Stdout and stderr are always captured, never streamed, and stdin is
	// never inherited. When spec.Check is set, a non-zero exit returns a
	// "command failed" error carrying the captured stderr; otherwise the
	// exit status is reported through the result only.
	Run(ctx context.Context, spec domain.CommandSpec) (domain.CommandResult, error)
}

// Locator determines whether a named executable is resolvable on the
// current search path, without invoking it.
type Locator interface {
	Look(name string) (path string, found bool)
}
