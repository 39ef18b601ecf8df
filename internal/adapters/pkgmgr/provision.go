package pkgmgr

import (
	"context"
	"strings"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
	"go.trai.ch/zerr"
)

const ocrBinary = "tesseract"

// Provisioner verifies or installs the Tesseract OCR engine.
type Provisioner struct {
	runner  ports.Runner
	locator ports.Locator
	logger  ports.Logger
	detect  func() ports.PackageManager
}

// NewProvisioner creates a new Provisioner.
func NewProvisioner(runner ports.Runner, locator ports.Locator, logger ports.Logger) *Provisioner {
	return &Provisioner{
		runner:  runner,
		locator: locator,
		logger:  logger,
		detect:  func() ports.PackageManager { return Detect(locator, runner) },
	}
}

// Ensure checks for Tesseract and, when provision is set, installs it
// through the detected package manager.
//
// Re-running with Tesseract already present performs no install action.
// A missing package manager is advisory only; a failing install command
// is fatal because provisioning was explicitly requested.
func (p *Provisioner) Ensure(ctx context.Context, provision bool) error {
	_, found := p.locator.Look(ocrBinary)

	if !provision {
		if found {
			p.logger.Info("Tesseract found: " + p.version(ctx) + " — OCR enabled")
			return nil
		}
		p.logger.Warn("Tesseract not found. Image OCR will be unavailable.")
		p.logger.Warn("Re-run with --with-ocr to install, or install manually and restart the server.")
		return nil
	}

	if found {
		p.logger.Info("Tesseract already installed: " + p.version(ctx))
		return nil
	}

	mgr := p.detect()
	if !mgr.ID().Known() {
		p.logger.Warn("Could not detect a supported package manager.")
		p.logger.Warn("Install Tesseract manually: https://github.com/tesseract-ocr/tesseract#installing-tesseract")
		return nil
	}

	p.logger.Info("Installing Tesseract using package manager: " + mgr.ID().String())
	if err := mgr.InstallOCR(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrProvisionFailed.Error())
	}

	p.logger.Info("Tesseract installed: " + p.version(ctx))
	return nil
}

// version reads the first line of Tesseract's version output. Some builds
// print the version to stderr, so stdout is preferred with a stderr
// fallback.
func (p *Provisioner) version(ctx context.Context) string {
	res, err := p.runner.Run(ctx, domain.CommandSpec{
		Name: ocrBinary,
		Args: []string{"--version"},
	})
	if err != nil {
		return "unknown"
	}

	out := res.Stdout
	if strings.TrimSpace(out) == "" {
		out = res.Stderr
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "unknown"
	}

	if idx := strings.IndexByte(out, '\n'); idx >= 0 {
		out = out[:idx]
	}
	return strings.TrimSpace(out)
}
