// Package config persists the service configuration as a small JSON
// file next to the managed script.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"runsvc/pkg/log"
	"runsvc/pkg/system"
)

const (
	// DefaultInterval is the number of seconds between cycles when no
	// configuration has been persisted.
	DefaultInterval = 3600

	// DefaultMaxLogLines bounds the run log.
	DefaultMaxLogLines = 100
)

// Config is the persisted service configuration.
type Config struct {
	Interval int `json:"interval"`
}

func Default() *Config {
	return &Config{Interval: DefaultInterval}
}

// Load reads the configuration from path. It never fails: a missing
// file, a read error, a parse error, or a nonpositive interval all fall
// back to the default, with anything other than absence logged.
func Load(path string, logger log.Logger) *Config {
	data, err := afero.ReadFile(system.AppFs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("reading config failed, using default", "path", path, "error", err)
		}
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn("parsing config failed, using default", "path", path, "error", err)
		return Default()
	}
	if cfg.Interval <= 0 {
		logger.Warn("persisted interval is not positive, using default", "path", path, "interval", cfg.Interval)
		cfg.Interval = DefaultInterval
	}
	return cfg
}

// Save writes the configuration to path as 2-space-indented JSON.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := afero.WriteFile(system.AppFs, path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
