package cachefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refdex/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/refdex/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.CachePath, log), nil
		},
	})
}
