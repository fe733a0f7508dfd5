package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refdex/internal/adapters/cachefile"          //nolint:depguard // Wired in app layer
	"go.trai.ch/refdex/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/refdex/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/refdex/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
	"go.trai.ch/refdex/internal/engine/indexer"
	"go.trai.ch/refdex/internal/engine/search"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			indexer.NodeID,
			search.NodeID,
			cachefile.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	ix, err := graft.Dep[*indexer.Indexer](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*search.Engine](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, ix, engine, store, tracer, log), nil
}
