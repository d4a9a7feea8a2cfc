// Package config loads the drawer tuning table. Every gesture threshold
// and elastic curve tuple the engines use is a key here, so behavior is
// reproducible and tunable without touching code.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/drawer/internal/drag"
	"github.com/llehouerou/drawer/internal/elastic"
	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/ui/layout"
)

const appName = "drawer"

// Config is the full tuning and preference surface.
type Config struct {
	Input InputConfig `koanf:"input"`

	// Drag and Sheet hold the engine thresholds; Elastic the overscale
	// curve table.
	Drag    drag.Thresholds  `koanf:"drag"`
	Sheet   sheet.Thresholds `koanf:"sheet"`
	Elastic elastic.Profile  `koanf:"elastic"`

	// Sizes maps size tokens to viewport fractions; HeaderExtent is the
	// minimized header strip height in engine units.
	Sizes        map[string]float64 `koanf:"sizes"`
	HeaderExtent float64            `koanf:"header_extent"`
}

// InputConfig tunes the input adapter.
type InputConfig struct {
	// CellSize is the engine units per terminal cell. The gesture
	// thresholds are denominated in (pixel-ish) units; this scales the
	// coarse cell grid up to them.
	CellSize float64 `koanf:"cell_size"`
}

// Default returns the tuned defaults.
func Default() *Config {
	sizes := make(map[string]float64, len(layout.DefaultFractions))
	for token, f := range layout.DefaultFractions {
		sizes[string(token)] = f
	}
	return &Config{
		Input:        InputConfig{CellSize: 8},
		Drag:         drag.DefaultThresholds(),
		Sheet:        sheet.DefaultThresholds(),
		Elastic:      elastic.DefaultProfile(),
		Sizes:        sizes,
		HeaderExtent: layout.DefaultHeaderExtent,
	}
}

// Load reads config files in priority order (last wins) over the
// defaults.
func Load() (*Config, error) {
	return loadFrom(configPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Fraction returns the viewport fraction for a size token, falling back
// to the medium token for unknown names.
func (c *Config) Fraction(size layout.Size) float64 {
	if f, ok := c.Sizes[string(size)]; ok && f > 0 {
		return f
	}
	if f, ok := c.Sizes[string(layout.SizeMedium)]; ok && f > 0 {
		return f
	}
	return layout.Fraction(size)
}

// Heights derives a sheet height profile using the configured sizing
// table.
func (c *Config) Heights(viewport float64, size layout.Size) layout.HeightProfile {
	return layout.HeightsWith(viewport, c.Fraction(size), c.HeaderExtent)
}

func configPaths() []string {
	paths := []string{}

	// 1. xdg config dir (usually ~/.config/drawer/config.toml)
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}
