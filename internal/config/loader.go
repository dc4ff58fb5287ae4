package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the configuration from the YAML file at path, merged
// over the defaults. An empty path means the default XDG location; a
// missing file at the default location is not an error and yields the
// defaults, while a missing file at an explicit path is.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		path = XDGConfigFile()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas dimensions %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.GridStride <= 0 {
		return fmt.Errorf("gridStride must be positive, got %d", c.GridStride)
	}
	return nil
}
