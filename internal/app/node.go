package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/compiler"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/gitfiles"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/probestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/tools"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/flagprobe"
	"go.trai.ch/mason/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the adapters the CLI layer touches directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			tools.NodeID,
			probestore.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			compiler.DetectorNodeID,
			compiler.LinkerNodeID,
			flagprobe.NodeID,
			gitfiles.NodeID,
			pipeline.BuilderNodeID,
			pipeline.RunnerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	locator, err := graft.Dep[ports.Locator](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ProbeStore](ctx)
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
	detector, err := graft.Dep[*compiler.Detector](ctx)
	if err != nil {
		return nil, err
	}
	linkers, err := graft.Dep[*compiler.LinkerSelector](ctx)
	if err != nil {
		return nil, err
	}
	probes, err := graft.Dep[*flagprobe.Runner](ctx)
	if err != nil {
		return nil, err
	}
	git, err := graft.Dep[*gitfiles.Client](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[*pipeline.Builder](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Loader:   loader,
		Locator:  locator,
		Store:    store,
		Logger:   log,
		Tracer:   tracer,
		Detector: detector,
		Linkers:  linkers,
		Probes:   probes,
		Git:      git,
		Builder:  builder,
		Pipeline: runner,
	}), nil
}
