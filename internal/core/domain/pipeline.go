package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Step is one external-tool invocation in a pipeline graph.
type Step struct {
	ID         string
	Command    []string
	WorkingDir string
	// Env entries in KEY=VALUE form, appended to the process environment.
	Env []string
	// DependsOn lists step ids that must complete before this step runs.
	DependsOn []string
	// Byproducts are artifact paths this step declares as outputs, so
	// downstream dependency tracking treats them as build outputs.
	Byproducts []string
	// ToleratesFailure marks the step as usable even when its command exits
	// non-zero. Only the coverage run step sets this: a failing instrumented
	// binary still writes usable profile data.
	ToleratesFailure bool
}

// Aggregate reports whether the step is a named attachment point with no
// command of its own.
func (s *Step) Aggregate() bool {
	return len(s.Command) == 0
}

// PipelineGraph is a validated DAG of pipeline steps. Dependency edges are
// declared here; legal parallelism is decided by whoever executes the graph.
type PipelineGraph struct {
	steps          map[string]Step
	dependents     map[string][]string
	executionOrder []string
}

// NewPipelineGraph creates a new empty PipelineGraph.
func NewPipelineGraph() *PipelineGraph {
	return &PipelineGraph{
		steps:      make(map[string]Step),
		dependents: make(map[string][]string),
	}
}

// AddStep adds a step to the graph.
// It returns an error if a step with the same id already exists.
func (g *PipelineGraph) AddStep(s *Step) error {
	if _, exists := g.steps[s.ID]; exists {
		return zerr.With(ErrStepAlreadyExists, "step", s.ID)
	}
	g.steps[s.ID] = *s
	return nil
}

// AddDependency declares that step id depends on dep. Both steps must already
// be present at Validate time; the edge itself is recorded unconditionally so
// aggregates can be attached to before their producers exist.
func (g *PipelineGraph) AddDependency(id, dep string) error {
	s, exists := g.steps[id]
	if !exists {
		return zerr.With(ErrStepNotFound, "step", id)
	}
	s.DependsOn = append(s.DependsOn, dep)
	g.steps[id] = s
	return nil
}

// Step returns the step with the given id.
func (g *PipelineGraph) Step(id string) (Step, bool) {
	s, ok := g.steps[id]
	return s, ok
}

// StepCount returns the number of steps in the graph.
func (g *PipelineGraph) StepCount() int {
	return len(g.steps)
}

// Dependents returns the ids of steps that depend on the given step.
// It is populated by Validate.
func (g *PipelineGraph) Dependents(id string) []string {
	return g.dependents[id]
}

// Validate checks for cycles in the graph using a topological sort.
// It populates the execution order and reverse edges if successful.
func (g *PipelineGraph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.steps))
	g.dependents = make(map[string][]string, len(g.steps))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		step, exists := g.steps[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u)
		}

		for _, dep := range step.DependsOn {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for id := range g.steps {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	for id, step := range g.steps {
		for _, dep := range step.DependsOn {
			g.dependents[dep] = append(g.dependents[dep], id)
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *PipelineGraph) buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk returns an iterator that yields steps in execution order.
// It assumes Validate() has been called and returned nil.
func (g *PipelineGraph) Walk() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, id := range g.executionOrder {
			if !yield(g.steps[id]) {
				return
			}
		}
	}
}
