package ports

import (
	"context"

	"github.com/markitdown-mcp/installer/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=steps.go -destination=mocks/mock_steps.go -package=mocks

// ToolchainGate validates that the build toolchain is present and meets
// the minimum version.
type ToolchainGate interface {
	Check(ctx context.Context) (domain.ToolVersion, error)
}

// Provisioner verifies or installs the optional OCR engine.
type Provisioner interface {
	// Ensure checks for the OCR engine. When provision is set it installs
	// the engine through the host's package manager if absent; a failing
	// install is an error. Without provision, absence is advisory only.
	Ensure(ctx context.Context, provision bool) error
}

// Builder invokes the toolchain to produce the binary artifact.
type Builder interface {
	Build(ctx context.Context, srcDir string) (domain.BuildArtifact, error)
}

// Installer copies the artifact to the install target and returns the
// final installed path. Re-running overwrites the previous binary.
type Installer interface {
	Install(artifact domain.BuildArtifact, target domain.InstallTarget) (string, error)
}

// Diagnostics checks whether the install directory is visible on the
// search path. It warns but never fails the run.
type Diagnostics interface {
	CheckPath(dir string)
}
