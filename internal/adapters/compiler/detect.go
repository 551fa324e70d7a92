// Package compiler talks to the C/C++ compiler driver: toolchain detection,
// trial compilations, and alternative-linker discovery.
package compiler

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// compilerCandidates is the default lookup order for the compiler driver.
var compilerCandidates = []string{"cc", "gcc", "clang"}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Detector resolves and classifies the toolchain for the configuration pass.
type Detector struct {
	locator ports.Locator
	runner  ports.Runner
	logger  ports.Logger
}

// NewDetector creates a new Detector.
func NewDetector(locator ports.Locator, runner ports.Runner, logger ports.Logger) *Detector {
	return &Detector{
		locator: locator,
		runner:  runner,
		logger:  logger,
	}
}

// Detect locates the compiler driver and classifies its family and version.
// A missing compiler is fatal; an unrecognized one yields FamilyUnsupported,
// which downstream features degrade on rather than fail.
func (d *Detector) Detect(ctx context.Context, override string) (domain.Toolchain, error) {
	candidates := compilerCandidates
	if override != "" {
		candidates = []string{override}
	}

	handle := d.locator.Resolve(candidates...)
	if !handle.Found {
		return domain.Toolchain{}, zerr.With(domain.ErrCompilerNotFound, "candidates", strings.Join(candidates, ","))
	}

	res, err := d.runner.Run(ctx, domain.Command{Path: handle.Path, Args: []string{"--version"}})
	if err != nil {
		return domain.Toolchain{}, zerr.Wrap(err, "failed to query compiler version")
	}
	if !res.Success() {
		return domain.Toolchain{}, zerr.With(zerr.With(zerr.New("compiler version query failed"),
			"path", handle.Path), "stderr", res.Stderr)
	}

	tc := Classify(res.Stdout)
	tc.CompilerPath = handle.Path

	if !tc.Family.Supported() {
		d.logger.Warn("unsupported compiler family, feature probing disabled: " + handle.Path)
	}

	return tc, nil
}

// Classify derives the toolchain family and version fingerprint from the
// compiler's --version output.
func Classify(versionOutput string) domain.Toolchain {
	tc := domain.Toolchain{Family: domain.FamilyUnsupported}

	lower := strings.ToLower(versionOutput)
	switch {
	case strings.Contains(lower, "clang"):
		tc.Family = domain.FamilyClang
	case strings.Contains(lower, "free software foundation"), strings.Contains(lower, "gcc"):
		tc.Family = domain.FamilyGNU
	}

	if m := versionPattern.FindString(versionOutput); m != "" {
		tc.Version = m
	} else {
		tc.Version = "unknown"
	}

	return tc
}
