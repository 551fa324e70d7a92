package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/tools"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/core/ports"
)

const (
	// BuilderNodeID is the unique identifier for the pipeline builder Graft node.
	BuilderNodeID graft.ID = "engine.pipeline.builder"
	// RunnerNodeID is the unique identifier for the pipeline runner Graft node.
	RunnerNodeID graft.ID = "engine.pipeline.runner"
)

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tools.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(locator, log), nil
		},
	})

	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.VerifierNodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(runner, verifier, log, tracer), nil
		},
	})
}
