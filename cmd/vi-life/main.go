package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/terminal"
	"github.com/lixenwraith/vi-life/visual"
)

func main() {
	os.Exit(realMain(os.Args, os.Stdout))
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain(args []string, stdout *os.File) int {
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, opts, err := parseArgs(args[0], args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-life: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, opts, stdout); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "vi-life: %v\n", err)
		return 1
	}
	return 0
}

// run dispatches to the selected mode
func run(cfg config.Config, opts options, stdout *os.File) error {
	cfg, err := applyPatternRule(cfg, opts.ruleSet)
	if err != nil {
		return err
	}

	if opts.writeConfig != "" {
		return cfg.Save(opts.writeConfig)
	}

	fd := int(stdout.Fd())
	interactive := terminal.IsTerminal(fd) && !opts.headless && opts.pngPath == "" && opts.bench == 0
	if interactive {
		return runViewer(cfg, opts.generations)
	}

	width, height := headlessSize(cfg, fd)
	seed := resolveSeed(cfg.Seed)

	if opts.bench > 0 {
		results, err := runBench(cfg, width, height, opts.bench, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%dx%d %s\n", width, height, cfg.Rule)
		for _, r := range results {
			fmt.Fprintln(stdout, r)
		}
		return nil
	}

	e, err := newEngine(cfg, width, height, seed, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	if opts.pngPath != "" {
		if err := e.AdvanceN(opts.generations); err != nil {
			return err
		}
		s := e.ReadCurrent()
		mapper := visual.NewMapper(cfg.PaletteOrDefault(), cfg.Lifetime)
		caption := fmt.Sprintf("gen %d  %s  pop %d", s.Generation, e.Rule(), s.Population())
		return writePNG(opts.pngPath, s, mapper, caption, opts.scale)
	}

	return runHeadless(stdout, e, opts.generations)
}
