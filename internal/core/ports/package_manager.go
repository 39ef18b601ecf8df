package ports

import (
	"context"

	"github.com/markitdown-mcp/installer/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks

// PackageManager is one native package manager strategy. Each variant
// encapsulates its own install-command sequence for the OCR engine.
type PackageManager interface {
	// ID identifies the manager, or domain.UnknownManager for the sentinel.
	ID() domain.PackageManagerID

	// InstallOCR runs the manager's install-command sequence for the
	// Tesseract OCR engine. Any failing command is an error.
	InstallOCR(ctx context.Context) error
}
