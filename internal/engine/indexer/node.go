package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refdex/internal/adapters/cachefile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/refdex/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/refdex/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/refdex/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/refdex/internal/adapters/prefab"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[*Indexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.EnumeratorNodeID,
			prefab.NodeID,
			cachefile.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Indexer, error) {
			enumerator, err := graft.Dep[ports.Enumerator](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.DependencyResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(enumerator, resolver, store, log, settings.BatchSize), nil
		},
	})
}
