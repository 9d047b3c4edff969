// Package config loads the YAML configuration for map generation and the
// read-only HTTP view.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hexforge/crownlands/internal/world"
)

// Config holds all settings.
type Config struct {
	Map      MapConfig      `yaml:"map"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	API      APIConfig      `yaml:"api"`
}

// MapConfig holds map shape and generation settings.
type MapConfig struct {
	Shape          string  `yaml:"shape"` // "hex" or "rect"
	Radius         int     `yaml:"radius"`
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Seed           int64   `yaml:"seed"`
	SeaLevel       float64 `yaml:"sea_level"`
	MountainLevel  float64 `yaml:"mountain_level"`
	HillLevel      float64 `yaml:"hill_level"`
	ResourceChance float64 `yaml:"resource_chance"`
}

// SnapshotConfig holds persistence settings.
type SnapshotConfig struct {
	Path string `yaml:"path"`
}

// APIConfig holds HTTP view settings. Port 0 disables the server.
type APIConfig struct {
	Port int `yaml:"port"`
}

// Load reads configuration from a YAML file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Map.Shape == "" {
		c.Map.Shape = "hex"
	}
	if c.Map.Radius == 0 {
		c.Map.Radius = 22
	}
	if c.Map.Width == 0 {
		c.Map.Width = 40
	}
	if c.Map.Height == 0 {
		c.Map.Height = 30
	}
	if c.Map.SeaLevel == 0 {
		c.Map.SeaLevel = 0.25
	}
	if c.Map.MountainLevel == 0 {
		c.Map.MountainLevel = 0.72
	}
	if c.Map.HillLevel == 0 {
		c.Map.HillLevel = 0.60
	}
	if c.Map.ResourceChance == 0 {
		c.Map.ResourceChance = 0.10
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = "data/crownlands.db"
	}
}

// GenConfig converts the map section to generation parameters.
func (c *Config) GenConfig() (world.GenConfig, error) {
	gen := world.GenConfig{
		Seed:           c.Map.Seed,
		SeaLevel:       c.Map.SeaLevel,
		MountainLevel:  c.Map.MountainLevel,
		HillLevel:      c.Map.HillLevel,
		ResourceChance: c.Map.ResourceChance,
	}
	switch c.Map.Shape {
	case "hex":
		gen.Layout = world.NewHexLayout(c.Map.Radius)
	case "rect":
		gen.Layout = world.NewRectLayout(c.Map.Width, c.Map.Height)
	default:
		return world.GenConfig{}, fmt.Errorf("unknown map shape %q", c.Map.Shape)
	}
	return gen, nil
}
