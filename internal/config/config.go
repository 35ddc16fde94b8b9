// Package config loads rendering settings from a TOML file.
//
//	preset = "queen"
//	scale = 20.0
//	output = "queen.svg"
//
//	[bounds]
//	min_x = -40.0
//	min_y = -20.0
//	max_x = 40.0
//	max_y = 20.0
//
//	[store]
//	path = "tilings.db"
//
// Keys left out keep their defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jbeda/geom"

	"penrose-tiling/pkg/errors"
	"penrose-tiling/pkg/pentagrid"
	"penrose-tiling/pkg/tiling"
)

type Config struct {
	Preset        string  `toml:"preset"`
	Scale         float64 `toml:"scale"`
	MaxIterations int     `toml:"max_iterations"`
	Output        string  `toml:"output"`
	Bounds        Bounds  `toml:"bounds"`
	Store         Store   `toml:"store"`
}

type Bounds struct {
	MinX float64 `toml:"min_x"`
	MinY float64 `toml:"min_y"`
	MaxX float64 `toml:"max_x"`
	MaxY float64 `toml:"max_y"`
}

// Store points at the SQLite tiling catalogue. An empty path disables it.
type Store struct {
	Path string `toml:"path"`
}

func Default() Config {
	return Config{
		Preset:        pentagrid.King.String(),
		Scale:         20,
		MaxIterations: tiling.DefaultMaxIterations,
		Bounds:        Bounds{MinX: -40, MinY: -20, MaxX: 40, MaxY: 20},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := pentagrid.ParsePreset(c.Preset); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", c.Scale)
	}
	if c.MaxIterations <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Bounds.MinX >= c.Bounds.MaxX || c.Bounds.MinY >= c.Bounds.MaxY {
		return errors.New(errors.ErrCodeInvalidBounds,
			"bounds (%v, %v)-(%v, %v) are empty", c.Bounds.MinX, c.Bounds.MinY, c.Bounds.MaxX, c.Bounds.MaxY)
	}
	return nil
}

// Rect returns the bounds as a rectangle.
func (b Bounds) Rect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: b.MinX, Y: b.MinY},
		Max: geom.Coord{X: b.MaxX, Y: b.MaxY},
	}
}

// OutputPath is where the SVG goes: the configured output, else the preset
// name with an .svg extension.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Preset + ".svg"
}
