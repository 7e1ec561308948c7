// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolodex configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	UI      UI      `yaml:"ui"`
}

// Storage holds storage file settings.
type Storage struct {
	Path string `yaml:"path"`
}

// UI holds session presentation settings.
type UI struct {
	Plain bool `yaml:"plain"` // Force the plain line-oriented session even on a TTY.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			Path: "addressbook.txt",
		},
		UI: UI{
			Plain: false,
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("config: storage.path cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_STORAGE_PATH, ROLODEX_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ROLODEX_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = plain
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage *rawStorage `yaml:"storage"`
	UI      *rawUI      `yaml:"ui"`
}

type rawStorage struct {
	Path *string `yaml:"path"`
}

type rawUI struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Storage != nil {
		if layer.Storage.Path != nil {
			c.Storage.Path = *layer.Storage.Path
		}
	}
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
}
