package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Ak270/grid-trader-pro/internal/model"
)

// Config is the on-disk configuration shape (YAML): one paper account per
// asset.
type Config struct {
	Assets map[string]AssetConfig `yaml:"assets"`
}

// AssetConfig holds one asset's grid parameters.
type AssetConfig struct {
	GridSpacing    float64 `yaml:"grid_spacing"`
	GridLevels     int     `yaml:"grid_levels"`
	InitialCapital float64 `yaml:"initial_capital"`
}

// Load reads and validates a config file. Missing per-asset fields default
// to the standard paper-trading setup (2% spacing, 10 levels, 25000).
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default mirrors the standard four-asset paper-trading setup.
func Default() *Config {
	return &Config{
		Assets: map[string]AssetConfig{
			"BTC": {GridSpacing: 0.02, GridLevels: 10, InitialCapital: 25000},
			"ETH": {GridSpacing: 0.025, GridLevels: 10, InitialCapital: 25000},
			"SOL": {GridSpacing: 0.025, GridLevels: 10, InitialCapital: 25000},
			"BNB": {GridSpacing: 0.03, GridLevels: 10, InitialCapital: 25000},
		},
	}
}

func (c *Config) applyDefaults() {
	for asset, ac := range c.Assets {
		if ac.GridSpacing == 0 {
			ac.GridSpacing = 0.02
		}
		if ac.GridLevels == 0 {
			ac.GridLevels = 10
		}
		if ac.InitialCapital == 0 {
			ac.InitialCapital = 25000
		}
		c.Assets[asset] = ac
	}
}

// Validate rejects invalid grid parameters up front; a bad spacing/level
// combination is fatal at load time, never discovered mid-cycle.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Assets) == 0 {
		return errors.New("at least one asset is required")
	}
	for asset, ac := range c.Assets {
		if err := model.ValidateGrid(ac.GridSpacing, ac.GridLevels); err != nil {
			return fmt.Errorf("asset %s: %w", asset, err)
		}
		if ac.InitialCapital <= 0 {
			return fmt.Errorf("asset %s: initial_capital must be > 0, got %g", asset, ac.InitialCapital)
		}
	}
	return nil
}

// AssetNames returns the configured assets in sorted order; the engine
// iterates assets in this fixed order every cycle.
func (c *Config) AssetNames() []string {
	names := make([]string, 0, len(c.Assets))
	for name := range c.Assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
