// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/refdex/internal/adapters/cachefile"
	_ "go.trai.ch/refdex/internal/adapters/config"
	_ "go.trai.ch/refdex/internal/adapters/fs"
	_ "go.trai.ch/refdex/internal/adapters/logger"
	_ "go.trai.ch/refdex/internal/adapters/prefab"
	_ "go.trai.ch/refdex/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/refdex/internal/app"
	_ "go.trai.ch/refdex/internal/engine/indexer"
	_ "go.trai.ch/refdex/internal/engine/search"
)
