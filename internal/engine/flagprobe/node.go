package flagprobe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/compiler"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/probestore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mason/internal/core/ports"
)

// NodeID is the unique identifier for the flag probe runner Graft node.
const NodeID graft.ID = "engine.flagprobe"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			probestore.NodeID,
			compiler.ProberNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			store, err := graft.Dep[ports.ProbeStore](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.CompileProber](ctx)
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
			return NewRunner(store, prober, log, tracer), nil
		},
	})
}
