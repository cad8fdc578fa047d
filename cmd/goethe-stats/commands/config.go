package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for the tool.
type Config struct {
	// Backend selects the backend by name; empty means auto-select.
	Backend string `yaml:"backend"`

	// Level overrides the backend's compression level when positive.
	Level int `yaml:"level"`

	// Statistics toggles statistics collection.
	Statistics bool `yaml:"statistics"`
}

func defaultConfig() *Config {
	return &Config{Statistics: true}
}

// loadConfig reads a YAML config file. An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
