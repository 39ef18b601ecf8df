// Package shell provides the process runner and tool locator adapters.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command described by spec synchronously.
//
// Both output streams are captured into the result; nothing is streamed to
// the terminal and stdin is never inherited. A non-zero exit is an error
// only when spec.Check is set, in which case the error carries the
// captured stderr. A command that cannot be started at all is always an
// error.
func (r *Runner) Run(ctx context.Context, spec domain.CommandSpec) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...) //nolint:gosec // commands come from the fixed step tables
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		res.ExitCode = -1
		return res, zerr.With(zerr.Wrap(err, "failed to start command"), "command", spec.Name)
	}

	res.ExitCode = exitErr.ExitCode()
	if !spec.Check {
		return res, nil
	}

	failed := zerr.With(domain.ErrCommandFailed, "command", spec.Name)
	failed = zerr.With(failed, "exit_code", res.ExitCode)
	return res, zerr.With(failed, "stderr", strings.TrimSpace(res.Stderr))
}
