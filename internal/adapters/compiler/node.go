package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/logger"
	"go.trai.ch/mason/internal/adapters/shell"
	"go.trai.ch/mason/internal/adapters/tools"
	"go.trai.ch/mason/internal/core/ports"
)

const (
	// DetectorNodeID is the unique identifier for the toolchain detector Graft node.
	DetectorNodeID graft.ID = "adapter.compiler.detector"
	// ProberNodeID is the unique identifier for the flag prober Graft node.
	ProberNodeID graft.ID = "adapter.compiler.prober"
	// LinkerNodeID is the unique identifier for the linker selector Graft node.
	LinkerNodeID graft.ID = "adapter.compiler.linker"
)

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tools.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Detector, error) {
			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(locator, runner, log), nil
		},
	})

	graft.Register(graft.Node[ports.CompileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.CompileProber, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFlagProber(runner), nil
		},
	})

	graft.Register(graft.Node[*LinkerSelector]{
		ID:        LinkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*LinkerSelector, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinkerSelector(runner, log), nil
		},
	})
}
