package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"turtle-feral-sim/internal/config"
	"turtle-feral-sim/internal/engine"
	"turtle-feral-sim/internal/logger"
	"turtle-feral-sim/internal/report"
)

func main() {
	configDir := flag.String("config-dir", "./configs", "Path to config directory")
	configFile := flag.String("config", "", "Single combined YAML config (overrides -config-dir)")
	preset := flag.String("preset", "", "Boss preset \"Group/Name\" applied to the target")
	iterations := flag.Int("iterations", 0, "Iterations (0 = use simulation.yaml)")
	duration := flag.Float64("duration", 0, "Fight duration in seconds (0 = use simulation.yaml)")
	seed := flag.Int64("seed", 0, "Base RNG seed (0 = use simulation.yaml or random)")
	workers := flag.Int("workers", 0, "Parallel workers (0 = use simulation.yaml or GOMAXPROCS)")
	vary := flag.Bool("vary-duration", false, "Spread fight durations around the configured value")
	showLog := flag.String("log", "", "Print the combat log of the \"min\" or \"max\" run")
	progress := flag.Bool("progress", false, "Show a live progress bar")
	logConfig := flag.String("log-config", "./configs/logging.yaml", "Path to logging config")
	flag.Parse()

	if err := run(options{
		configDir:  *configDir,
		configFile: *configFile,
		preset:     *preset,
		iterations: *iterations,
		duration:   *duration,
		seed:       *seed,
		workers:    *workers,
		vary:       *vary,
		showLog:    *showLog,
		progress:   *progress,
		logConfig:  *logConfig,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "simulator: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configDir  string
	configFile string
	preset     string
	iterations int
	duration   float64
	seed       int64
	workers    int
	vary       bool
	showLog    string
	progress   bool
	logConfig  string
}

func run(opts options) error {
	logCfg, err := logger.LoadConfig(opts.logConfig)
	if err != nil {
		return err
	}
	if err := logger.Initialize(logCfg); err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started",
		"iterations", cfg.Simulation.Iterations,
		"duration_s", cfg.Simulation.DurationSeconds,
		"target", cfg.Target.Type)
	start := time.Now()

	runOpts := engine.RunOptions{KeepLogs: opts.showLog != ""}
	var agg *engine.AggregateResult
	if opts.progress {
		err = report.RunWithProgress(ctx, os.Stderr, "Simulating", func(ctx context.Context, progress func(done, total int)) error {
			runOpts.Progress = progress
			var runErr error
			agg, runErr = engine.RunMany(ctx, cfg, runOpts)
			return runErr
		})
	} else {
		agg, err = engine.RunMany(ctx, cfg, runOpts)
	}
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	logger.Info("simulation finished", "mean_dps", agg.MeanDPS, "elapsed", time.Since(start))

	report.PrintAggregate(os.Stdout, agg)

	switch opts.showLog {
	case "":
	case "min", "max":
		r := agg.MaxRun
		if opts.showLog == "min" {
			r = agg.MinRun
		}
		fmt.Println()
		report.PrintRun(os.Stdout, r)
		return report.WriteCombatLog(os.Stdout, r.Log)
	default:
		return fmt.Errorf("-log must be min or max (got %q)", opts.showLog)
	}
	return nil
}

func loadConfig(opts options) (config.SimulationConfig, error) {
	var (
		loaded *config.SimulationConfig
		err    error
	)
	if opts.configFile != "" {
		loaded, err = config.LoadFile(opts.configFile)
	} else {
		loaded, err = config.LoadConfig(opts.configDir)
	}
	if err != nil {
		return config.SimulationConfig{}, fmt.Errorf("load config: %w", err)
	}
	cfg := *loaded

	if opts.preset != "" {
		p, ok := config.FindPreset(opts.preset)
		if !ok {
			return cfg, fmt.Errorf("unknown preset %q", opts.preset)
		}
		cfg.ApplyPreset(p)
	}
	if opts.iterations > 0 {
		cfg.Simulation.Iterations = opts.iterations
	}
	if opts.duration > 0 {
		cfg.Simulation.DurationSeconds = opts.duration
	}
	if opts.seed != 0 {
		cfg = cfg.WithSeed(opts.seed)
	}
	if opts.workers > 0 {
		cfg.Simulation.Workers = opts.workers
	}
	if opts.vary {
		cfg.Simulation.VaryDuration = true
	}
	return cfg, nil
}
