// Package config provides the configuration loader for refdex.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the project root.
const DefaultFilename = "refdex.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default config filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory. A missing
// file yields the defaults; a malformed file is an error.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from user cwd
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.Wrap(err, "failed to read config file")
	}

	var file refdexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse config file")
	}

	settings := domain.DefaultSettings()
	if file.Root != "" {
		settings.Root = file.Root
	}
	if file.Cache != "" {
		settings.CachePath = file.Cache
	}
	if file.BatchSize > 0 {
		settings.BatchSize = file.BatchSize
	}
	if len(file.Ignore) > 0 {
		settings.Ignore = file.Ignore
	}
	if file.Watch.DebounceMS > 0 {
		settings.Debounce = time.Duration(file.Watch.DebounceMS) * time.Millisecond
	}
	return settings, nil
}
