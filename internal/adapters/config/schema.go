package config

// refdexFile represents the structure of the refdex.yaml configuration file.
type refdexFile struct {
	Version   string      `yaml:"version"`
	Root      string      `yaml:"root"`
	Cache     string      `yaml:"cache"`
	BatchSize int         `yaml:"batchSize"`
	Ignore    []string    `yaml:"ignore"`
	Watch     watchConfig `yaml:"watch"`
}

type watchConfig struct {
	DebounceMS int `yaml:"debounceMs"`
}
