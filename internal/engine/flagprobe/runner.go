// Package flagprobe implements cached compiler flag support probing.
package flagprobe

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner probes a candidate flag list against the toolchain, caching the
// outcome of the whole list under a single key.
type Runner struct {
	store  ports.ProbeStore
	prober ports.CompileProber
	logger ports.Logger
	tracer ports.Tracer
}

// NewRunner creates a new Runner.
func NewRunner(
	store ports.ProbeStore,
	prober ports.CompileProber,
	logger ports.Logger,
	tracer ports.Tracer,
) *Runner {
	return &Runner{
		store:  store,
		prober: prober,
		logger: logger,
		tracer: tracer,
	}
}

// Probe returns the order-preserving subsequence of candidates the toolchain
// accepts.
//
// With force=false a cached result for this exact (toolchain, candidate list)
// is returned without invoking the compiler. With force=true probing runs
// regardless of prior cache state and the record is overwritten.
//
// Each candidate is judged in isolation; flags that only conflict in
// combination are not detected. Unsupported toolchain families short-circuit
// to an empty list with a warning, never an error.
func (r *Runner) Probe(ctx context.Context, tc domain.Toolchain, candidates []string, force bool) ([]string, error) {
	if !tc.Family.Supported() {
		r.logger.Warn("flag probing skipped for unsupported toolchain: " + tc.Identity())
		return nil, nil
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	key := domain.NewProbeKey(tc, candidates)

	if !force {
		record, err := r.store.Get(key)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read probe cache")
		}
		if record != nil {
			_, span := r.tracer.Start(ctx, "probe "+key.Digest, ports.WithCached())
			span.SetAttribute("supported", len(record.Supported))
			span.End()
			return record.Supported, nil
		}
	}

	ctx, span := r.tracer.Start(ctx, "probe "+key.Digest)
	defer span.End()
	span.SetAttribute("candidates", strings.Join(candidates, " "))

	supported := make([]string, 0, len(candidates))
	for _, flag := range candidates {
		ok, err := r.prober.ProbeFlag(ctx, tc, flag)
		if err != nil {
			span.RecordError(err)
			return nil, zerr.With(zerr.Wrap(err, "flag probe failed"), "flag", flag)
		}
		if ok {
			supported = append(supported, flag)
		} else {
			r.logger.Info("flag not supported: " + flag)
		}
	}

	record := domain.ProbeRecord{
		Key:       key,
		Supported: supported,
		Timestamp: time.Now(),
	}
	if err := r.store.Put(record); err != nil {
		return nil, zerr.Wrap(err, "failed to persist probe record")
	}

	return supported, nil
}
