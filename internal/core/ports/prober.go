package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// CompileProber defines the interface for trial compilations.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type CompileProber interface {
	// ProbeFlag compiles a minimal translation unit with the candidate flag
	// and reports whether the toolchain accepted it. Each flag is judged in
	// isolation from all others; flags that only conflict in combination are
	// not detected. That imprecision is accepted, surrounding tooling relies
	// on it.
	ProbeFlag(ctx context.Context, tc domain.Toolchain, flag string) (bool, error)
}
