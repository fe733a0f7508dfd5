package domain

import "time"

// DefaultBatchSize bounds the number of nodes resolved per build step.
const DefaultBatchSize = 20

// Settings holds the resolved project configuration.
type Settings struct {
	// Root is the corpus root directory, relative to the project root.
	Root string
	// CachePath is where the persisted index lives, outside the corpus.
	CachePath string
	// BatchSize is the number of nodes processed per build step.
	BatchSize int
	// Ignore lists glob patterns excluded from enumeration and watching.
	Ignore []string
	// Debounce is the quiet period before watch mode triggers a rebuild.
	Debounce time.Duration
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Root:      "assets",
		CachePath: ".refdex/cache.json",
		BatchSize: DefaultBatchSize,
		Debounce:  500 * time.Millisecond,
	}
}
