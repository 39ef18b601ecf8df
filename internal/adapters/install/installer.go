// Package install places the built binary into the install target and
// diagnoses PATH visibility of the target directory.
package install

import (
	"io"
	"os"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer copies build artifacts into their install target. It
// implements ports.Installer.
type Installer struct {
	logger   ports.Logger
	platform domain.Platform
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger, platform domain.Platform) *Installer {
	return &Installer{
		logger:   logger,
		platform: platform,
	}
}

// Install copies the artifact into the target directory, creating it if
// needed, and marks the binary executable on non-Windows hosts. An
// existing binary at the destination is overwritten.
func (i *Installer) Install(artifact domain.BuildArtifact, target domain.InstallTarget) (string, error) {
	if err := os.MkdirAll(target.Dir, 0o755); err != nil {
		return "", zerr.Wrap(zerr.With(err, "dir", target.Dir), domain.ErrInstallFailed.Error())
	}

	dest := target.InstalledPath()
	if err := copyFile(artifact.Path, dest); err != nil {
		failed := zerr.With(err, "source", artifact.Path)
		return "", zerr.Wrap(zerr.With(failed, "dest", dest), domain.ErrInstallFailed.Error())
	}

	if !i.platform.IsWindows() {
		if err := os.Chmod(dest, 0o755); err != nil {
			return "", zerr.Wrap(zerr.With(err, "dest", dest), domain.ErrInstallFailed.Error())
		}
	}

	i.logger.Info("Installed to: " + dest)
	return dest, nil
}

// copyFile copies src to dst, replacing dst if it exists and carrying
// over the source's mode and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
