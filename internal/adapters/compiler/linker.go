package compiler

import (
	"context"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
)

// linkerProbe pairs a -fuse-ld name with the marker its --version output carries.
type linkerProbe struct {
	name   string
	marker string
}

// Preference order: lld first, gold as fallback, default linker otherwise.
var linkerProbes = []linkerProbe{
	{name: "lld", marker: "LLD"},
	{name: "gold", marker: "GNU gold"},
}

// LinkerSelector discovers a usable alternative linker for the toolchain.
type LinkerSelector struct {
	runner ports.Runner
	logger ports.Logger
}

// NewLinkerSelector creates a new LinkerSelector.
func NewLinkerSelector(runner ports.Runner, logger ports.Logger) *LinkerSelector {
	return &LinkerSelector{
		runner: runner,
		logger: logger,
	}
}

// Select returns the -fuse-ld flag for the first usable alternative linker,
// or ok=false when none is available. Missing alternatives only cost the
// faster linker, so every failure here is a warning, never fatal.
func (s *LinkerSelector) Select(ctx context.Context, tc domain.Toolchain) (flag string, ok bool) {
	if !tc.Family.Supported() {
		return "", false
	}

	for _, probe := range linkerProbes {
		useLd := "-fuse-ld=" + probe.name
		res, err := s.runner.Run(ctx, domain.Command{
			Path: tc.CompilerPath,
			Args: []string{useLd, "-Wl,--version"},
		})
		if err != nil {
			s.logger.Warn("linker probe failed to run: " + probe.name)
			continue
		}
		if res.Success() && strings.Contains(res.Stdout, probe.marker) {
			return useLd, true
		}
	}

	s.logger.Warn("no alternative linker found, using toolchain default")
	return "", false
}
