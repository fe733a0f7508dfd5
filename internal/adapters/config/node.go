package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the config loader node.
	LoaderNodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the resolved settings node.
	SettingsNodeID graft.ID = "adapter.config_settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// Settings are resolved once from the working directory and shared by
	// every component that needs paths or batch sizing.
	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			return loader.Load(".")
		},
	})
}
