package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/core/domain"
)

func buildChain(t *testing.T, ids ...string) *domain.PipelineGraph {
	t.Helper()
	g := domain.NewPipelineGraph()
	for i, id := range ids {
		step := &domain.Step{ID: id, Command: []string{"true"}}
		if i > 0 {
			step.DependsOn = []string{ids[i-1]}
		}
		require.NoError(t, g.AddStep(step))
	}
	return g
}

func TestPipelineGraph_WalkOrder(t *testing.T) {
	g := buildChain(t, "setup", "run", "merge", "report")
	require.NoError(t, g.Validate())

	var order []string
	for step := range g.Walk() {
		order = append(order, step.ID)
	}
	assert.Equal(t, []string{"setup", "run", "merge", "report"}, order)
}

func TestPipelineGraph_DuplicateStep(t *testing.T) {
	g := domain.NewPipelineGraph()
	require.NoError(t, g.AddStep(&domain.Step{ID: "a"}))

	err := g.AddStep(&domain.Step{ID: "a"})
	assert.ErrorIs(t, err, domain.ErrStepAlreadyExists)
}

func TestPipelineGraph_CycleDetected(t *testing.T) {
	g := domain.NewPipelineGraph()
	require.NoError(t, g.AddStep(&domain.Step{ID: "a", DependsOn: []string{"b"}}))
	require.NoError(t, g.AddStep(&domain.Step{ID: "b", DependsOn: []string{"a"}}))

	err := g.Validate()
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestPipelineGraph_MissingDependency(t *testing.T) {
	g := domain.NewPipelineGraph()
	require.NoError(t, g.AddStep(&domain.Step{ID: "a", DependsOn: []string{"ghost"}}))

	err := g.Validate()
	assert.ErrorIs(t, err, domain.ErrMissingDependency)
}

func TestPipelineGraph_Dependents(t *testing.T) {
	g := buildChain(t, "setup", "run")
	require.NoError(t, g.Validate())

	assert.Equal(t, []string{"run"}, g.Dependents("setup"))
	assert.Empty(t, g.Dependents("run"))
}

func TestPipelineGraph_AddDependencyUnknownStep(t *testing.T) {
	g := domain.NewPipelineGraph()
	err := g.AddDependency("ghost", "dep")
	assert.True(t, errors.Is(err, domain.ErrStepNotFound))
}
