package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// Runner defines the interface for invoking external tools.
//
// An error is returned only when the process could not be started; a process
// that ran and exited non-zero is reported through CommandResult so callers
// can decide whether the exit is fatal or tolerated.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command and waits for it to finish.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
