package main

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/grid"
	"github.com/lixenwraith/vi-life/pattern"
	"github.com/lixenwraith/vi-life/status"
)

// initialCells builds the starting generation from a pattern or a random fill
func initialCells(cfg config.Config, width, height int, seed int64) ([]grid.Cell, error) {
	if cfg.Pattern != "" {
		p, err := pattern.Lookup(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		return p.Seed(width, height), nil
	}
	return grid.Random(width, height, cfg.Density, seed), nil
}

// applyPatternRule adopts the rule from a pattern file header unless one was set explicitly
func applyPatternRule(cfg config.Config, explicit bool) (config.Config, error) {
	if cfg.Pattern == "" {
		return cfg, nil
	}
	p, err := pattern.Lookup(cfg.Pattern)
	if err != nil {
		return cfg, err
	}
	if p.Rule == "" {
		return cfg, nil
	}

	if explicit {
		log.Printf("pattern: %s rule %s ignored, using %s", p.Name, p.Rule, cfg.Rule)
		return cfg, nil
	}
	adopted := cfg
	adopted.Rule = p.Rule
	if _, err := adopted.Table(); err != nil {
		log.Printf("pattern: %s rule %s unusable, using %s: %v", p.Name, p.Rule, cfg.Rule, err)
		return cfg, nil
	}
	log.Printf("pattern: %s using rule %s", p.Name, p.Rule)
	return adopted, nil
}

// resolveSeed replaces the zero seed with one from the clock
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newEngine builds an engine with an owned worker pool
func newEngine(cfg config.Config, width, height int, seed int64, reg *status.Registry) (*engine.Engine, error) {
	params, err := cfg.Params(width, height)
	if err != nil {
		return nil, err
	}
	cells, err := initialCells(cfg, width, height, seed)
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{engine.WithPool(cfg.Workers, cfg.TileSize)}
	if reg != nil {
		opts = append(opts, engine.WithStatus(reg))
	}
	e, err := engine.New(params, cells, opts...)
	if err != nil {
		return nil, err
	}
	log.Printf("engine: %dx%d rule %s lifetime %d seed %d", width, height, e.Rule(), params.Lifetime, seed)
	return e, nil
}
