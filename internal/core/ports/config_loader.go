package ports

import "go.trai.ch/refdex/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// A missing config file yields the defaults, not an error.
	Load(cwd string) (domain.Settings, error)
}
