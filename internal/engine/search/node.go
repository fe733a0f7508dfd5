package search

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the query engine Graft node.
const NodeID graft.ID = "engine.search"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Engine, error) {
			return NewEngine(), nil
		},
	})
}
