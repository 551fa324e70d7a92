// Package probestore implements persistent storage for probe outcomes.
package probestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProbeStore = (*Store)(nil)

// Store implements ports.ProbeStore using a flat JSON file.
//
// The in-memory map is the source of truth during a configuration pass; the
// file persists probe results across passes so unchanged toolchains skip
// re-probing entirely. Entries are keyed by toolchain identity plus candidate
// digest, so records for one compiler never leak into another.
type Store struct {
	path string
	// rel holds the original path when it was relative, so Rebase can
	// re-anchor it under a project root.
	rel   string
	mu    sync.RWMutex
	cache map[string]domain.ProbeRecord
}

// NewStore creates a new ProbeStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ProbeRecord),
	}
	if !filepath.IsAbs(s.path) {
		s.rel = s.path
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebase re-anchors a relative store path under the given project root and
// reloads persisted records, so the cache lives inside the project being
// configured rather than the process working directory. Stores opened with
// an absolute path are unaffected.
func (s *Store) Rebase(root string) error {
	s.mu.Lock()
	if s.rel == "" {
		s.mu.Unlock()
		return nil
	}
	s.path = filepath.Join(root, s.rel)
	s.cache = make(map[string]domain.ProbeRecord)
	s.mu.Unlock()

	return s.load()
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read probe store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal probe store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal probe store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for probe store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write probe store")
	}

	return nil
}

// Get retrieves the record for a given probe key.
// Returns nil, nil on a miss; callers re-probe.
func (s *Store) Get(key domain.ProbeKey) (*domain.ProbeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[key.String()]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, overwriting any previous one under the same key.
func (s *Store) Put(record domain.ProbeRecord) error {
	s.mu.Lock()
	s.cache[record.Key.String()] = record
	s.mu.Unlock()

	return s.save()
}

// Invalidate removes the record for a single key, if present.
func (s *Store) Invalidate(key domain.ProbeKey) error {
	s.mu.Lock()
	delete(s.cache, key.String())
	s.mu.Unlock()

	return s.save()
}

// InvalidateToolchain removes every record for the given toolchain identity.
// Records for other toolchains are untouched.
func (s *Store) InvalidateToolchain(identity string) error {
	prefix := identity + "/"

	s.mu.Lock()
	for k := range s.cache {
		if strings.HasPrefix(k, prefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	return s.save()
}
