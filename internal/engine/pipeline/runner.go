package pipeline

import (
	"context"
	"sort"
	"sync"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes a validated pipeline graph. This is the downstream
// executor the graph's dependency edges were declared for: steps whose
// dependencies are met run in parallel waves, everything else waits.
type Runner struct {
	runner   ports.Runner
	verifier ports.Verifier
	logger   ports.Logger
	tracer   ports.Tracer

	mu     sync.RWMutex
	status map[string]domain.StepStatus
}

// NewRunner creates a new pipeline Runner.
func NewRunner(
	runner ports.Runner,
	verifier ports.Verifier,
	logger ports.Logger,
	tracer ports.Tracer,
) *Runner {
	return &Runner{
		runner:   runner,
		verifier: verifier,
		logger:   logger,
		tracer:   tracer,
		status:   make(map[string]domain.StepStatus),
	}
}

// Status returns the recorded status of a step.
func (r *Runner) Status(id string) domain.StepStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status[id]
}

func (r *Runner) setStatus(id string, s domain.StepStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[id] = s
}

// Run executes the subgraph needed to satisfy the entry step, with at most
// parallelism steps in flight. The graph must have been validated.
// An empty entry runs the whole graph.
func (r *Runner) Run(ctx context.Context, g *domain.PipelineGraph, entry string, parallelism int) error {
	if parallelism < 1 {
		parallelism = 1
	}

	needed, err := r.subgraph(g, entry)
	if err != nil {
		return err
	}

	for step := range g.Walk() {
		if !needed[step.ID] {
			r.setStatus(step.ID, domain.StepStatusSkipped)
		}
	}

	planned := make([]string, 0, len(needed))
	for id := range needed {
		planned = append(planned, id)
		r.setStatus(id, domain.StepStatusPending)
	}
	sort.Strings(planned)
	r.tracer.EmitPlan(ctx, planned)

	pending := make(map[string]int, len(needed))
	for id := range needed {
		step, _ := g.Step(id)
		deps := 0
		for _, dep := range step.DependsOn {
			if needed[dep] {
				deps++
			}
		}
		pending[id] = deps
	}

	for len(pending) > 0 {
		ready := readySteps(pending)
		if len(ready) == 0 {
			return zerr.New("pipeline stalled with unmet dependencies")
		}

		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(parallelism)
		for _, id := range ready {
			step, _ := g.Step(id)
			eg.Go(func() error {
				return r.executeStep(egCtx, &step)
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		for _, id := range ready {
			delete(pending, id)
			for _, dependent := range g.Dependents(id) {
				if _, ok := pending[dependent]; ok {
					pending[dependent]--
				}
			}
		}
	}

	return nil
}

// subgraph returns the transitive dependency closure of the entry step.
func (r *Runner) subgraph(g *domain.PipelineGraph, entry string) (map[string]bool, error) {
	needed := make(map[string]bool)

	if entry == "" {
		for step := range g.Walk() {
			needed[step.ID] = true
		}
		return needed, nil
	}

	if _, ok := g.Step(entry); !ok {
		return nil, zerr.With(domain.ErrStepNotFound, "step", entry)
	}

	var visit func(id string)
	visit = func(id string) {
		if needed[id] {
			return
		}
		needed[id] = true
		step, _ := g.Step(id)
		for _, dep := range step.DependsOn {
			visit(dep)
		}
	}
	visit(entry)
	return needed, nil
}

func readySteps(pending map[string]int) []string {
	var ready []string
	for id, deps := range pending {
		if deps == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)
	return ready
}

func (r *Runner) executeStep(ctx context.Context, step *domain.Step) error {
	// Aggregates are pure attachment points.
	if step.Aggregate() {
		r.setStatus(step.ID, domain.StepStatusCompleted)
		return nil
	}

	r.setStatus(step.ID, domain.StepStatusRunning)
	ctx, span := r.tracer.Start(ctx, step.ID)
	defer span.End()

	res, err := r.runner.Run(ctx, domain.Command{
		Path: step.Command[0],
		Args: step.Command[1:],
		Dir:  step.WorkingDir,
		Env:  step.Env,
	})
	if err != nil {
		r.setStatus(step.ID, domain.StepStatusFailed)
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "step invocation failed"), "step", step.ID)
	}

	if !res.Success() {
		if step.ToleratesFailure {
			// A failing instrumented run still writes usable profile data,
			// so downstream steps proceed.
			r.setStatus(step.ID, domain.StepStatusTolerated)
			r.logger.Warn("step exited non-zero, continuing: " + step.ID)
		} else {
			r.setStatus(step.ID, domain.StepStatusFailed)
			failure := zerr.With(zerr.With(zerr.With(zerr.New("step failed"),
				"step", step.ID), "exit_code", res.ExitCode), "stderr", res.Stderr)
			span.RecordError(failure)
			return failure
		}
	} else {
		r.setStatus(step.ID, domain.StepStatusCompleted)
	}

	r.checkByproducts(step)
	return nil
}

// checkByproducts warns about declared byproducts that did not materialize.
// Downstream steps will surface the real failure; the warning just names the
// culprit earlier.
func (r *Runner) checkByproducts(step *domain.Step) {
	if len(step.Byproducts) == 0 {
		return
	}
	missing, err := r.verifier.VerifyByproducts(step.WorkingDir, step.Byproducts)
	if err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, "byproduct verification failed"), "step", step.ID))
		return
	}
	for _, m := range missing {
		r.logger.Warn("declared byproduct missing after step " + step.ID + ": " + m)
	}
}
