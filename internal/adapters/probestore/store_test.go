package probestore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/probestore"
	"go.trai.ch/mason/internal/core/domain"
)

var (
	gnuToolchain   = domain.Toolchain{Family: domain.FamilyGNU, Version: "13.2.0"}
	clangToolchain = domain.Toolchain{Family: domain.FamilyClang, Version: "17.0.1"}
)

func newTestStore(t *testing.T) (*probestore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probes.json")
	s, err := probestore.NewStore(path)
	require.NoError(t, err)
	return s, path
}

func TestStore_GetMiss(t *testing.T) {
	s, _ := newTestStore(t)

	record, err := s.Get(domain.NewProbeKey(gnuToolchain, []string{"-Wall"}))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	key := domain.NewProbeKey(gnuToolchain, []string{"-Wall", "-Wextra"})
	require.NoError(t, s.Put(domain.ProbeRecord{
		Key:       key,
		Supported: []string{"-Wall"},
		Timestamp: time.Now(),
	}))

	record, err := s.Get(key)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"-Wall"}, record.Supported)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	s, path := newTestStore(t)

	key := domain.NewProbeKey(clangToolchain, []string{"-Wshadow"})
	require.NoError(t, s.Put(domain.ProbeRecord{Key: key, Supported: []string{"-Wshadow"}}))

	reopened, err := probestore.NewStore(path)
	require.NoError(t, err)

	record, err := reopened.Get(key)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"-Wshadow"}, record.Supported)
}

func TestStore_Invalidate(t *testing.T) {
	s, _ := newTestStore(t)

	key := domain.NewProbeKey(gnuToolchain, []string{"-Wall"})
	require.NoError(t, s.Put(domain.ProbeRecord{Key: key, Supported: []string{"-Wall"}}))
	require.NoError(t, s.Invalidate(key))

	record, err := s.Get(key)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestStore_InvalidateToolchainIsPartitioned(t *testing.T) {
	s, _ := newTestStore(t)

	gnuKey := domain.NewProbeKey(gnuToolchain, []string{"-Wall"})
	clangKey := domain.NewProbeKey(clangToolchain, []string{"-Wall"})
	require.NoError(t, s.Put(domain.ProbeRecord{Key: gnuKey, Supported: []string{"-Wall"}}))
	require.NoError(t, s.Put(domain.ProbeRecord{Key: clangKey, Supported: []string{"-Wall"}}))

	require.NoError(t, s.InvalidateToolchain(gnuToolchain.Identity()))

	gone, err := s.Get(gnuKey)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := s.Get(clangKey)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, []string{"-Wall"}, kept.Supported)
}

func TestStore_RebaseAnchorsRelativePath(t *testing.T) {
	s, err := probestore.NewStore(filepath.Join(".mason", "probes.json"))
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, s.Rebase(root))

	key := domain.NewProbeKey(gnuToolchain, []string{"-Wall"})
	require.NoError(t, s.Put(domain.ProbeRecord{Key: key, Supported: []string{"-Wall"}}))

	// The cache file lives under the rebased root, not the working directory.
	reopened, err := probestore.NewStore(filepath.Join(root, ".mason", "probes.json"))
	require.NoError(t, err)
	record, err := reopened.Get(key)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"-Wall"}, record.Supported)
}

func TestStore_RebaseReloadsFromNewRoot(t *testing.T) {
	root := t.TempDir()
	seeded, err := probestore.NewStore(filepath.Join(root, ".mason", "probes.json"))
	require.NoError(t, err)
	key := domain.NewProbeKey(clangToolchain, []string{"-Wshadow"})
	require.NoError(t, seeded.Put(domain.ProbeRecord{Key: key, Supported: []string{"-Wshadow"}}))

	s, err := probestore.NewStore(filepath.Join(".mason", "probes.json"))
	require.NoError(t, err)
	require.NoError(t, s.Rebase(root))

	record, err := s.Get(key)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"-Wshadow"}, record.Supported)
}

func TestStore_RebaseAbsolutePathIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	key := domain.NewProbeKey(gnuToolchain, []string{"-Wall"})
	require.NoError(t, s.Put(domain.ProbeRecord{Key: key, Supported: []string{"-Wall"}}))

	require.NoError(t, s.Rebase(t.TempDir()))

	record, err := s.Get(key)
	require.NoError(t, err)
	require.NotNil(t, record)
}

func TestNewStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := probestore.NewStore(path)
	assert.Error(t, err)
}
