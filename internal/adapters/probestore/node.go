package probestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/core/ports"
)

// NodeID is the unique identifier for the probe store Graft node.
const NodeID graft.ID = "adapter.probestore"

// DefaultPath is the default location of the persisted probe results.
const DefaultPath = ".mason/probes.json"

func init() {
	graft.Register(graft.Node[ports.ProbeStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProbeStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
