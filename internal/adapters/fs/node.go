package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refdex/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/refdex/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
)

// EnumeratorNodeID is the unique identifier for the enumerator Graft node.
const EnumeratorNodeID graft.ID = "adapter.fs.enumerator"

func init() {
	graft.Register(graft.Node[ports.Enumerator]{
		ID:        EnumeratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Enumerator, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnumerator(log, settings.Ignore), nil
		},
	})
}
