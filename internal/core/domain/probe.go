package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ProbeKey identifies one cached probe outcome. Records are partitioned by
// toolchain identity so that switching compilers never reuses stale results.
type ProbeKey struct {
	Toolchain string `json:"toolchain"`
	Digest    string `json:"digest"`
}

// NewProbeKey derives the cache key for a candidate flag list under a toolchain.
// The digest is an order-sensitive hash: reordering candidates is a different probe.
func NewProbeKey(tc Toolchain, candidates []string) ProbeKey {
	h := xxhash.New()
	for _, c := range candidates {
		_, _ = h.WriteString(c)
		_, _ = h.Write([]byte{0})
	}
	return ProbeKey{
		Toolchain: tc.Identity(),
		Digest:    fmt.Sprintf("%016x", h.Sum64()),
	}
}

// String returns the flat form used as a map/file key.
func (k ProbeKey) String() string {
	return k.Toolchain + "/" + k.Digest
}

// ProbeRecord is the persisted outcome of one flag probe run: the
// order-preserving subsequence of candidates the compiler accepted.
// The whole list is stored under a single key, not per-flag entries.
type ProbeRecord struct {
	Key       ProbeKey  `json:"key"`
	Supported []string  `json:"supported"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ToolHandle is the memoized result of locating an external executable.
// A handle with Found=false is a valid answer, not an error; the caller
// decides whether the missing tool is fatal or merely degrades a feature.
type ToolHandle struct {
	Name  string
	Path  string
	Found bool
}
