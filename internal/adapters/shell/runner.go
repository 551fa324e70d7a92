// Package shell provides the external-tool runner adapter.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
//
// Stdout and stderr are captured in full rather than streamed: every
// invocation at this layer is short-lived (version queries, trial
// compilations, report generation) and callers need the captured stderr
// for fatal-error reporting.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and waits for it to finish.
// A non-zero exit status is reported through the result, not as an error;
// an error means the process could not be started at all.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	if cmd.Path == "" {
		return domain.CommandResult{}, zerr.New("empty command path")
	}

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // tool paths come from the locator
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, zerr.With(zerr.Wrap(err, "failed to start command"), "path", cmd.Path)
	}

	return res, nil
}
