package flagprobe_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/telemetry"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports/mocks"
	"go.trai.ch/mason/internal/engine/flagprobe"
	"go.uber.org/mock/gomock"
)

var gnuTC = domain.Toolchain{
	Family:       domain.FamilyGNU,
	Version:      "13.2.0",
	CompilerPath: "/usr/bin/gcc",
}

// fakeProber answers flag probes from a fixed table and counts invocations.
type fakeProber struct {
	supported map[string]bool
	calls     int
}

func (f *fakeProber) ProbeFlag(_ context.Context, _ domain.Toolchain, flag string) (bool, error) {
	f.calls++
	return f.supported[flag], nil
}

func newRunner(t *testing.T, prober *fakeProber) (*flagprobe.Runner, *mocks.MockProbeStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProbeStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return flagprobe.NewRunner(store, prober, logger, telemetry.NewNoOpTracer()), store
}

func TestRunner_ProbePreservesCandidateOrder(t *testing.T) {
	prober := &fakeProber{supported: map[string]bool{"-Wa": true, "-Wc": true}}
	r, store := newRunner(t, prober)

	key := domain.NewProbeKey(gnuTC, []string{"-Wa", "-Wb", "-Wc"})
	store.EXPECT().Get(key).Return(nil, nil)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(record domain.ProbeRecord) error {
		assert.Equal(t, key, record.Key)
		assert.Equal(t, []string{"-Wa", "-Wc"}, record.Supported)
		return nil
	})

	supported, err := r.Probe(context.Background(), gnuTC, []string{"-Wa", "-Wb", "-Wc"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Wa", "-Wc"}, supported)
	assert.Equal(t, 3, prober.calls)
}

func TestRunner_CacheHitSkipsCompiler(t *testing.T) {
	prober := &fakeProber{}
	r, store := newRunner(t, prober)

	key := domain.NewProbeKey(gnuTC, []string{"-Wall", "-Wextra"})
	store.EXPECT().Get(key).Return(&domain.ProbeRecord{
		Key:       key,
		Supported: []string{"-Wall"},
		Timestamp: time.Now(),
	}, nil)

	supported, err := r.Probe(context.Background(), gnuTC, []string{"-Wall", "-Wextra"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Wall"}, supported)
	assert.Zero(t, prober.calls)
}

func TestRunner_ForceBypassesCache(t *testing.T) {
	prober := &fakeProber{supported: map[string]bool{"-Wall": true}}
	r, store := newRunner(t, prober)

	// With force the cache is never consulted, only overwritten.
	store.EXPECT().Put(gomock.Any()).Return(nil)

	supported, err := r.Probe(context.Background(), gnuTC, []string{"-Wall"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Wall"}, supported)
	assert.Equal(t, 1, prober.calls)
}

func TestRunner_UnsupportedFamilyDegrades(t *testing.T) {
	prober := &fakeProber{}
	r, _ := newRunner(t, prober)

	tc := domain.Toolchain{Family: domain.FamilyUnsupported, Version: "unknown"}
	supported, err := r.Probe(context.Background(), tc, []string{"-Wall"}, false)
	require.NoError(t, err)
	assert.Empty(t, supported)
	assert.Zero(t, prober.calls)
}

func TestRunner_EmptyCandidates(t *testing.T) {
	prober := &fakeProber{}
	r, _ := newRunner(t, prober)

	supported, err := r.Probe(context.Background(), gnuTC, nil, false)
	require.NoError(t, err)
	assert.Empty(t, supported)
	assert.Zero(t, prober.calls)
}

func TestRunner_AllRejectedPersistsEmptyList(t *testing.T) {
	prober := &fakeProber{}
	r, store := newRunner(t, prober)

	store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(record domain.ProbeRecord) error {
		assert.Empty(t, record.Supported)
		return nil
	})

	supported, err := r.Probe(context.Background(), gnuTC, []string{"-Wbogus"}, false)
	require.NoError(t, err)
	assert.Empty(t, supported)
	assert.Equal(t, 1, prober.calls)
}
