// Package toolchain implements the Go toolchain preflight gate.
package toolchain

import (
	"context"
	"fmt"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	goBinary = "go"

	requiredMajor = 1
	requiredMinor = 24
)

// Gate validates that the Go toolchain is installed and recent enough.
type Gate struct {
	runner  ports.Runner
	locator ports.Locator
	logger  ports.Logger
}

// NewGate creates a new Gate.
func NewGate(runner ports.Runner, locator ports.Locator, logger ports.Logger) *Gate {
	return &Gate{
		runner:  runner,
		locator: locator,
		logger:  logger,
	}
}

// Check fails fast when the toolchain is missing, then parses the version
// out of "go version" output and compares it numerically against the
// required minimum. "1.9" compares as older than "1.24".
func (g *Gate) Check(ctx context.Context) (domain.ToolVersion, error) {
	if _, found := g.locator.Look(goBinary); !found {
		return domain.ToolVersion{}, zerr.Wrap(domain.ErrToolchainNotFound,
			"Go is not installed. Download it from https://go.dev/dl/ and re-run")
	}

	res, err := g.runner.Run(ctx, domain.CommandSpec{
		Name:  goBinary,
		Args:  []string{"version"},
		Check: true,
	})
	if err != nil {
		return domain.ToolVersion{}, zerr.Wrap(err, "could not read go version")
	}

	ver, err := domain.ParseToolVersion(res.Stdout, goBinary)
	if err != nil {
		return domain.ToolVersion{}, err
	}

	if !ver.AtLeast(requiredMajor, requiredMinor) {
		return ver, zerr.Wrap(domain.ErrToolchainTooOld,
			fmt.Sprintf("Go %d.%d+ required, found %s", requiredMajor, requiredMinor, ver.Raw))
	}

	g.logger.Info(fmt.Sprintf("Go %s found", ver.Raw))
	return ver, nil
}
