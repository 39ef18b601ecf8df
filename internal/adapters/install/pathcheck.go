package install

import (
	"os"
	"path/filepath"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
)

// Diagnostics warns when the install directory is not on the search
// path. It implements ports.Diagnostics.
type Diagnostics struct {
	logger   ports.Logger
	platform domain.Platform
	getenv   func(string) string
}

// NewDiagnostics creates a new Diagnostics.
func NewDiagnostics(logger ports.Logger, platform domain.Platform) *Diagnostics {
	return &Diagnostics{
		logger:   logger,
		platform: platform,
		getenv:   os.Getenv,
	}
}

// CheckPath warns if dir is absent from PATH and prints the platform's
// remediation hint. It never fails the run.
func (d *Diagnostics) CheckPath(dir string) {
	cleaned := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(d.getenv("PATH")) {
		if entry != "" && filepath.Clean(entry) == cleaned {
			return
		}
	}

	d.logger.Warn(dir + " is not on your PATH.")
	d.logger.Warn(d.platform.PathRemediation(dir))
}
