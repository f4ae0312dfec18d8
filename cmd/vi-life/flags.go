package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/parameter"
)

// options are run-mode flags that never live in a config file
type options struct {
	configPath  string
	writeConfig string
	debug       bool
	headless    bool
	generations int
	pngPath     string
	scale       int
	bench       int

	// ruleSet records an explicit rule from -rule or the config file
	ruleSet bool
}

// newFlagSet declares every flag; config-backed flags are applied only when set
func newFlagSet(name string, cfg *config.Config, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.StringVar(&opts.writeConfig, "write-config", "", "Write the resolved config to this path and exit")
	fs.BoolVar(&opts.debug, "debug", false, "Log to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.headless, "headless", false, "Print text frames instead of the interactive viewer")
	fs.IntVar(&opts.generations, "generations", 0, "Stop after N generations (0: viewer runs until quit, headless prints 10)")
	fs.StringVar(&opts.pngPath, "png", "", "Write the final generation as a PNG image")
	fs.IntVar(&opts.scale, "scale", parameter.DefaultPNGScale, "Pixels per cell for -png")
	fs.IntVar(&opts.bench, "bench", 0, "Measure generations per second over N steps")

	fs.IntVar(&cfg.Width, "width", cfg.Width, "Grid width, 0 fits the terminal")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Grid height, 0 fits the terminal")
	fs.Func("lifetime", "Age cap for coloring, 0 disables aging", func(s string) error {
		var v uint32
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		cfg.Lifetime = v
		return nil
	})
	fs.StringVar(&cfg.Rule, "rule", cfg.Rule, "Rule in B/S notation or a preset name")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "Initial live probability for random fill")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random fill seed, 0 picks one from the clock")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Built-in pattern name or .cells/.rle file instead of random fill")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines, 0 uses all CPUs")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Cells per tile edge handed to a worker")
	fs.Func("interval", "Generation interval", durationFlag(&cfg.Interval))
	fs.Func("frame", "Redraw interval", durationFlag(&cfg.FrameInterval))
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "Palette: ember, ocean, mono")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Color mode: auto, truecolor, 256")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play a tone per generation")

	return fs
}

func durationFlag(d *config.Duration) func(string) error {
	return func(s string) error {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		d.Duration = v
		return nil
	}
}

// parseArgs resolves defaults, then -config, then explicit flags
func parseArgs(name string, args []string) (config.Config, options, error) {
	var opts options

	// First pass only locates -config
	probe := config.Default()
	fs := newFlagSet(name, &probe, &opts)
	fs.SetOutput(io.Discard)
	// Errors resurface with usage output in the second pass
	_ = fs.Parse(args)

	cfg := config.Default()
	fileRule := false
	if opts.configPath != "" {
		loaded, md, err := config.LoadMeta(opts.configPath)
		if err != nil {
			return config.Config{}, opts, err
		}
		cfg = loaded
		fileRule = md.IsDefined("rule")
	}

	// Second pass writes explicit flags over the file values
	opts = options{}
	fs = newFlagSet(name, &cfg, &opts)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}
	opts.ruleSet = fileRule
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "rule" {
			opts.ruleSet = true
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, opts, err
	}
	return cfg, opts, nil
}
