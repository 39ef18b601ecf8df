// Package logger implements console logging with the prefix style used
// throughout the installer: "==>" for progress, "warn:" for advisories
// and "error:" for failures.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/markitdown-mcp/installer/internal/ui/output"
	"github.com/markitdown-mcp/installer/internal/ui/style"
)

// Console writes progress lines and advisories to stdout and errors to
// stderr. It implements ports.Logger.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a Console bound to the process's standard streams and
// pins the lipgloss renderer to the detected color profile so styled
// prefixes degrade to plain text when colors are unavailable.
func New() *Console {
	lipgloss.SetColorProfile(output.New(os.Stdout).Profile)

	return &Console{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// NewWithWriters creates a Console bound to explicit writers.
func NewWithWriters(out, errOut io.Writer) *Console {
	return &Console{
		out:    out,
		errOut: errOut,
	}
}

// Info prints a progress line.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", style.ArrowStyle.Render(style.Arrow), msg)
}

// Warn prints an advisory. Advisories never alter the exit code.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", style.WarnStyle.Render(style.WarnTag), msg)
}

// Error prints a failure.
func (c *Console) Error(err error) {
	fmt.Fprintf(c.errOut, "%s %s\n", style.ErrorStyle.Render(style.ErrorTag), err.Error())
}
