// Package gitfiles wraps the version-control collaborator: submodule
// initialization and tracked-file listings for the format targets.
package gitfiles

import (
	"context"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client invokes git for the configuration pass.
type Client struct {
	locator ports.Locator
	runner  ports.Runner
	logger  ports.Logger
}

// NewClient creates a new Client.
func NewClient(locator ports.Locator, runner ports.Runner, logger ports.Logger) *Client {
	return &Client{
		locator: locator,
		runner:  runner,
		logger:  logger,
	}
}

// SyncSubmodules runs `git submodule update --init --recursive`.
// A missing git binary degrades with a warning; a failing invocation is a
// setup-phase fatal and carries the captured stderr.
func (c *Client) SyncSubmodules(ctx context.Context, workDir string) error {
	handle := c.locator.Resolve("git")
	if !handle.Found {
		c.logger.Warn("git not found, skipping submodule sync")
		return nil
	}

	res, err := c.runner.Run(ctx, domain.Command{
		Path: handle.Path,
		Args: []string{"submodule", "update", "--init", "--recursive"},
		Dir:  workDir,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to run git submodule update")
	}
	if !res.Success() {
		return zerr.With(zerr.New("git submodule update failed"), "stderr", res.Stderr)
	}

	return nil
}

// TrackedSources returns the tracked files matching the given pathspecs,
// minus files deleted in the working tree. git reports deleted files as
// still tracked, and feeding those to the formatter fails the format target.
func (c *Client) TrackedSources(ctx context.Context, workDir string, pathspecs []string) ([]string, error) {
	handle := c.locator.Resolve("git")
	if !handle.Found {
		return nil, nil
	}

	tracked, err := c.lsFiles(ctx, handle.Path, workDir, pathspecs, false)
	if err != nil {
		return nil, err
	}
	deleted, err := c.lsFiles(ctx, handle.Path, workDir, pathspecs, true)
	if err != nil {
		return nil, err
	}

	if len(deleted) == 0 {
		return tracked, nil
	}

	gone := make(map[string]bool, len(deleted))
	for _, d := range deleted {
		gone[d] = true
	}
	kept := make([]string, 0, len(tracked))
	for _, f := range tracked {
		if !gone[f] {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

func (c *Client) lsFiles(ctx context.Context, gitPath, workDir string, pathspecs []string, deleted bool) ([]string, error) {
	args := []string{"ls-files"}
	if deleted {
		args = append(args, "--deleted")
	}
	args = append(args, pathspecs...)

	res, err := c.runner.Run(ctx, domain.Command{Path: gitPath, Args: args, Dir: workDir})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to run git ls-files")
	}
	if !res.Success() {
		return nil, zerr.With(zerr.New("git ls-files failed"), "stderr", res.Stderr)
	}

	var files []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
