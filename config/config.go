// Package config loads simulation settings from TOML files.
//
// Values resolve in order: built-in defaults, then the config file, then
// command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
	pv "github.com/lixenwraith/vi-life/parameter/visual"
	"github.com/lixenwraith/vi-life/rule"
)

// ErrInvalidConfig wraps every validation and decoding failure
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration written as a Go duration string ("100ms")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds every tunable of a run
// Width or Height 0 means fit the terminal viewport
type Config struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Lifetime uint32  `toml:"lifetime"`
	Rule     string  `toml:"rule"`
	Density  float64 `toml:"density"`
	Seed     int64   `toml:"seed"`
	Pattern  string  `toml:"pattern"`

	Workers  int `toml:"workers"`
	TileSize int `toml:"tile_size"`

	Interval      Duration `toml:"interval"`
	FrameInterval Duration `toml:"frame_interval"`

	Palette string `toml:"palette"`
	Color   string `toml:"color"`
	Sound   bool   `toml:"sound"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:         parameter.DefaultWidth,
		Height:        parameter.DefaultHeight,
		Lifetime:      parameter.DefaultLifetime,
		Rule:          parameter.DefaultRule,
		Density:       parameter.DefaultDensity,
		TileSize:      parameter.DefaultTileSize,
		Interval:      Duration{parameter.SimulationInterval},
		FrameInterval: Duration{parameter.FrameUpdateInterval},
		Palette:       pv.DefaultPalette,
		Color:         "auto",
	}
}

// Load reads path over the defaults; unknown keys are rejected
func Load(path string) (Config, error) {
	cfg, _, err := LoadMeta(path)
	return cfg, err
}

// LoadMeta is Load that also returns which keys the file defined
func LoadMeta(path string) (Config, toml.MetaData, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, md, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, md, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, md, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, md, nil
}

// Save writes cfg as TOML, creating parent directories
func (c Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate checks ranges and that names resolve
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Lifetime > parameter.MaxLifetime:
		return fmt.Errorf("%w: lifetime %d above %d", ErrInvalidConfig, c.Lifetime, parameter.MaxLifetime)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidConfig, c.Density)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.TileSize < 0 || c.TileSize > parameter.MaxTileSize:
		return fmt.Errorf("%w: tile_size %d outside [0,%d]", ErrInvalidConfig, c.TileSize, parameter.MaxTileSize)
	case c.Interval.Duration < parameter.MinSimulationInterval:
		return fmt.Errorf("%w: interval %v below %v", ErrInvalidConfig, c.Interval, parameter.MinSimulationInterval)
	case c.FrameInterval.Duration <= 0:
		return fmt.Errorf("%w: frame_interval %v", ErrInvalidConfig, c.FrameInterval)
	}

	if _, err := c.Table(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, ok := pv.PaletteByName(c.Palette); !ok {
		return fmt.Errorf("%w: unknown palette %q", ErrInvalidConfig, c.Palette)
	}
	switch c.Color {
	case "auto", "256", "truecolor", "true", "24bit":
	default:
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.Color)
	}
	return nil
}

// Table resolves the rule string, which may be a preset name or B/S notation
func (c Config) Table() (rule.Table, error) {
	return rule.Lookup(c.Rule)
}

// Params builds engine params for a resolved grid size
func (c Config) Params(width, height int) (engine.Params, error) {
	t, err := c.Table()
	if err != nil {
		return engine.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return engine.NewParams(width, height, c.Lifetime, t), nil
}

// PaletteOrDefault resolves the configured palette
func (c Config) PaletteOrDefault() pv.Palette {
	if p, ok := pv.PaletteByName(c.Palette); ok {
		return p
	}
	return pv.Ember
}
