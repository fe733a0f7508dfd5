package prefab

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refdex/internal/core/ports"
)

// NodeID is the unique identifier for the prefab resolver Graft node.
const NodeID graft.ID = "adapter.prefab_resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyResolver, error) {
			return NewResolver(), nil
		},
	})
}
