package compiler

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompileProber = (*FlagProber)(nil)

// minimalSource is the translation unit compiled for every flag probe.
const minimalSource = "int main(void) { return 0; }\n"

// FlagProber implements ports.CompileProber by compiling a minimal
// translation unit with the candidate flag.
type FlagProber struct {
	runner ports.Runner
}

// NewFlagProber creates a new FlagProber.
func NewFlagProber(runner ports.Runner) *FlagProber {
	return &FlagProber{runner: runner}
}

// ProbeFlag reports whether the toolchain accepts the candidate flag.
//
// -Werror turns unknown-flag diagnostics into failures, so a zero exit means
// the compilation produced no diagnostics by construction. Output is never
// parsed.
func (p *FlagProber) ProbeFlag(ctx context.Context, tc domain.Toolchain, flag string) (bool, error) {
	dir, err := os.MkdirTemp("", "mason-probe-*")
	if err != nil {
		return false, zerr.Wrap(err, "failed to create probe scratch dir")
	}
	defer os.RemoveAll(dir) //nolint:errcheck // Best effort cleanup

	src := filepath.Join(dir, "probe.c")
	if err := os.WriteFile(src, []byte(minimalSource), 0o600); err != nil {
		return false, zerr.Wrap(err, "failed to write probe source")
	}

	res, err := p.runner.Run(ctx, domain.Command{
		Path: tc.CompilerPath,
		Args: []string{"-Werror", flag, "-c", src, "-o", filepath.Join(dir, "probe.o")},
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to invoke compiler"), "flag", flag)
	}

	return res.Success(), nil
}
