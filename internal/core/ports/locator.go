package ports

import "go.trai.ch/mason/internal/core/domain"

// Locator defines the interface for resolving external executables by name.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Resolve tries candidate names in order and returns a handle for the
	// first one found on the search path. A handle with Found=false is a
	// valid answer when none resolve. Results are memoized for the process
	// lifetime; repeated resolution of the same name set does not search
	// the filesystem again.
	Resolve(names ...string) domain.ToolHandle

	// Reset clears the memoized handles so subsequent lookups search again.
	Reset()
}
