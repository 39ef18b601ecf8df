// Package gobuild invokes the Go toolchain to produce the server binary.
package gobuild

import (
	"context"
	"path/filepath"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.Builder by shelling out to the go tool.
type Builder struct {
	runner   ports.Runner
	logger   ports.Logger
	platform domain.Platform
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.Runner, logger ports.Logger, platform domain.Platform) *Builder {
	return &Builder{
		runner:   runner,
		logger:   logger,
		platform: platform,
	}
}

// Build runs dependency resolution and then compilation in srcDir. The
// artifact lands in srcDir under the platform binary name. A failure in
// either step aborts the build; there is no partial-build recovery.
func (b *Builder) Build(ctx context.Context, srcDir string) (domain.BuildArtifact, error) {
	bin := b.platform.BinaryName(domain.ServerBinary)
	b.logger.Info("Building " + bin + "...")

	steps := []domain.CommandSpec{
		{Name: "go", Args: []string{"mod", "tidy", "-e"}, Dir: srcDir, Check: true},
		{Name: "go", Args: []string{"build", "-ldflags=-s -w", "-o=" + bin, "."}, Dir: srcDir, Check: true},
	}
	for _, spec := range steps {
		if _, err := b.runner.Run(ctx, spec); err != nil {
			return domain.BuildArtifact{}, zerr.Wrap(err, domain.ErrBuildFailed.Error())
		}
	}

	artifact := domain.BuildArtifact{Path: filepath.Join(srcDir, bin)}
	b.logger.Info("Built: " + artifact.Path)
	return artifact, nil
}
