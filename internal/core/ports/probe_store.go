package ports

import "go.trai.ch/mason/internal/core/domain"

// ProbeStore defines the interface for persisting probe outcomes.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe_store.go -destination=mocks/mock_probe_store.go -package=mocks
type ProbeStore interface {
	// Get retrieves the record for a given probe key.
	// Returns nil, nil on a miss; a miss is not an error, callers re-probe.
	Get(key domain.ProbeKey) (*domain.ProbeRecord, error)

	// Put stores the record, overwriting any previous one under the same key.
	Put(record domain.ProbeRecord) error

	// Invalidate removes the record for a single key, if present.
	Invalidate(key domain.ProbeKey) error

	// InvalidateToolchain removes every record for the given toolchain
	// identity. Records for other toolchains are untouched.
	InvalidateToolchain(identity string) error

	// Rebase re-anchors a relative store path under the given project root
	// and reloads persisted records. Stores opened with an absolute path are
	// unaffected.
	Rebase(root string) error
}
