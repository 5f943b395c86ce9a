// Package config holds the run-report configuration: the observing site
// used for the darkness model and the fixed filter-name to filter-id table.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration parsed from a YAML file.
type Config struct {
	Site SiteConfig `yaml:"site"`

	// Filters maps each filter name that may appear in a pointing log to
	// its ordinal position in the filter wheel. The table must be total
	// over the data: an unknown filter name aborts the report.
	Filters map[string]int `yaml:"filters"`
}

// SiteConfig identifies the observing site for the darkness model.
type SiteConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`  // degrees, north positive
	Longitude float64 `yaml:"longitude"` // degrees, east positive
}

// Default returns the built-in configuration: the Palomar 48-inch site
// and the ZTF filter wheel.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Name:      "Palomar",
			Latitude:  33.3563,
			Longitude: -116.8650,
		},
		Filters: map[string]int{
			"g": 1,
			"r": 2,
			"i": 3,
		},
	}
}

// Load reads and validates a configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return fmt.Errorf("site latitude must be between -90 and 90, got %f", c.Site.Latitude)
	}
	if c.Site.Longitude < -180 || c.Site.Longitude > 180 {
		return fmt.Errorf("site longitude must be between -180 and 180, got %f", c.Site.Longitude)
	}
	if len(c.Filters) == 0 {
		return fmt.Errorf("filter table must not be empty")
	}

	seen := make(map[int]string, len(c.Filters))
	for name, id := range c.Filters {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("filters %q and %q share id %d", prev, name, id)
		}
		seen[id] = name
	}

	return nil
}
