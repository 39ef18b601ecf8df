// Package pkgmgr detects the host's native package manager and provisions
// the Tesseract OCR engine through it.
package pkgmgr

import (
	"context"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports"
	"go.trai.ch/zerr"
)

// probeOrder is the fixed probe order for package manager detection.
// Hosts with several managers installed always resolve to the earliest
// hit, so behavior is reproducible across hosts.
var probeOrder = []domain.PackageManagerID{
	domain.Brew,
	domain.AptGet,
	domain.Dnf,
	domain.Yum,
	domain.Pacman,
	domain.Zypper,
	domain.Choco,
}

// installCommands maps each manager to its Tesseract install sequence.
// Every command is checked; a non-zero exit aborts the sequence.
var installCommands = map[domain.PackageManagerID][]domain.CommandSpec{
	domain.Brew: {
		{Name: "brew", Args: []string{"install", "tesseract"}, Check: true},
	},
	domain.AptGet: {
		{Name: "sudo", Args: []string{"apt-get", "update", "-q"}, Check: true},
		{Name: "sudo", Args: []string{"apt-get", "install", "-y", "tesseract-ocr"}, Check: true},
	},
	domain.Dnf: {
		{Name: "sudo", Args: []string{"dnf", "install", "-y", "tesseract"}, Check: true},
	},
	domain.Yum: {
		{Name: "sudo", Args: []string{"yum", "install", "-y", "tesseract"}, Check: true},
	},
	domain.Pacman: {
		{Name: "sudo", Args: []string{"pacman", "-Sy", "--noconfirm", "tesseract", "tesseract-data-eng"}, Check: true},
	},
	domain.Zypper: {
		{Name: "sudo", Args: []string{"zypper", "install", "-y", "tesseract-ocr"}, Check: true},
	},
	domain.Choco: {
		{Name: "choco", Args: []string{"install", "-y", "tesseract"}, Check: true},
	},
}

// manager is one native package manager strategy backed by the runner.
type manager struct {
	id     domain.PackageManagerID
	runner ports.Runner
}

// ID identifies the manager.
func (m *manager) ID() domain.PackageManagerID {
	return m.id
}

// InstallOCR runs the manager's install-command sequence for Tesseract.
// The unknown sentinel has no commands and installs nothing.
func (m *manager) InstallOCR(ctx context.Context) error {
	for _, spec := range installCommands[m.id] {
		if _, err := m.runner.Run(ctx, spec); err != nil {
			return zerr.With(err, "package_manager", m.id.String())
		}
	}
	return nil
}

// Detect probes the fixed, ordered list of known package managers and
// returns the first one resolvable on the search path, or the unknown
// sentinel when none match.
func Detect(locator ports.Locator, runner ports.Runner) ports.PackageManager {
	for _, id := range probeOrder {
		if _, found := locator.Look(id.String()); found {
			return &manager{id: id, runner: runner}
		}
	}
	return &manager{id: domain.UnknownManager, runner: runner}
}
