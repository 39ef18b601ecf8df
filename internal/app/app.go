// Package app implements the application layer of the installer: the
// linear run that gates the toolchain, provisions OCR, builds, installs
// and emits the client configuration.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
	"go.trai.ch/zerr"
)

// RunOptions carry the command-line settings for a single run. Zero
// values defer to the defaults file and then to platform conventions.
type RunOptions struct {
	WithOCR bool
	Prefix  string
	Source  string
}

// App orchestrates one install run. Steps execute strictly in order and
// the first fatal error aborts the run; advisory conditions are logged
// and never change the outcome.
type App struct {
	logger       ports.Logger
	configLoader ports.ConfigLoader
	gate         ports.ToolchainGate
	provisioner  ports.Provisioner
	builder      ports.Builder
	installer    ports.Installer
	diagnostics  ports.Diagnostics
	store        ports.ManifestStore
	platform     domain.Platform

	stdout io.Writer
	now    func() time.Time
}

// New creates a new App instance.
func New(
	logger ports.Logger,
	configLoader ports.ConfigLoader,
	gate ports.ToolchainGate,
	provisioner ports.Provisioner,
	builder ports.Builder,
	installer ports.Installer,
	diagnostics ports.Diagnostics,
	store ports.ManifestStore,
	platform domain.Platform,
) *App {
	return &App{
		logger:       logger,
		configLoader: configLoader,
		gate:         gate,
		provisioner:  provisioner,
		builder:      builder,
		installer:    installer,
		diagnostics:  diagnostics,
		store:        store,
		platform:     platform,
		stdout:       os.Stdout,
		now:          time.Now,
	}
}

// SetStdout redirects the config snippet output, used by tests.
func (a *App) SetStdout(w io.Writer) {
	a.stdout = w
}

// Run executes the install sequence.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defaults, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load defaults")
	}

	target := a.resolveTarget(opts, defaults)
	srcDir := resolveSource(opts, defaults)

	ver, err := a.gate.Check(ctx)
	if err != nil {
		return err
	}

	if err := a.provisioner.Ensure(ctx, opts.WithOCR || defaults.WithOCR); err != nil {
		return err
	}

	artifact, err := a.builder.Build(ctx, srcDir)
	if err != nil {
		return err
	}

	prev, err := a.store.Get(target.Dir, target.BinName)
	if err != nil {
		a.logger.Warn("could not read install manifest: " + err.Error())
	}

	dest, err := a.installer.Install(artifact, target)
	if err != nil {
		return err
	}

	if err := a.store.Record(domain.InstallRecord{
		Binary:      target.BinName,
		Path:        dest,
		GoVersion:   ver.Raw,
		InstalledAt: a.now(),
	}); err != nil {
		a.logger.Warn("could not update install manifest: " + err.Error())
	}
	if prev != nil {
		a.logger.Info(fmt.Sprintf("Replaced previous install from %s",
			prev.InstalledAt.Format(time.RFC3339)))
	}

	a.diagnostics.CheckPath(target.Dir)
	a.emitConfig(dest)

	a.logger.Info("Done. Restart your MCP client to pick up the new server.")
	return nil
}

// resolveTarget picks the install directory: the --prefix flag wins,
// then INSTALL_DIR, then the defaults file, then the platform default.
func (a *App) resolveTarget(opts RunOptions, defaults domain.Defaults) domain.InstallTarget {
	dir := opts.Prefix
	if dir == "" {
		dir = os.Getenv("INSTALL_DIR")
	}
	if dir == "" {
		dir = defaults.Prefix
	}
	if dir == "" {
		dir = a.platform.DefaultInstallDir()
	}

	return domain.InstallTarget{
		Dir:     dir,
		BinName: a.platform.BinaryName(domain.ServerBinary),
	}
}

func resolveSource(opts RunOptions, defaults domain.Defaults) string {
	if opts.Source != "" {
		return opts.Source
	}
	if defaults.Source != "" {
		return defaults.Source
	}
	return filepath.Join("src", "markitdown")
}
