package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"turtle-feral-sim/internal/config"
	"turtle-feral-sim/internal/engine"
	"turtle-feral-sim/internal/logger"
	"turtle-feral-sim/internal/report"
)

type sweepConfig struct {
	stat         string
	start        float64
	stop         float64
	step         float64
	includeDelta bool
	outputDir    string
}

func main() {
	configDir := flag.String("config-dir", "./configs", "Path to config directory")
	iterations := flag.Int("iterations", 0, "Iterations per scenario (0 = use simulation.yaml)")
	workers := flag.Int("workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	verbose := flag.Bool("verbose", false, "Show per-unit and scenario DPS columns")
	sweepStat := flag.String("stat", "", "Stat to sweep (ap|crit|hit|haste). If set, runs sweep mode instead of weights.")
	sweepStart := flag.Float64("start", math.NaN(), "Sweep start. Defaults depend on stat.")
	sweepStop := flag.Float64("stop", math.NaN(), "Sweep stop. Defaults depend on stat.")
	sweepStep := flag.Float64("step", math.NaN(), "Sweep step. Defaults depend on stat.")
	includeDelta := flag.Bool("deltas", true, "Include DPS-per-point delta column in sweep CSV.")
	outputDir := flag.String("output-dir", "output/stat_curves", "Directory for sweep CSV output.")
	logConfig := flag.String("log-config", "./configs/logging.yaml", "Path to logging config")
	flag.Parse()

	if logCfg, err := logger.LoadConfig(*logConfig); err == nil {
		_ = logger.Initialize(logCfg)
	}

	loaded, err := config.LoadConfig(*configDir)
	if err != nil {
		fail("load config: %v", err)
	}
	cfg := *loaded
	if *iterations > 0 {
		cfg.Simulation.Iterations = *iterations
	}
	if *workers > 0 {
		cfg.Simulation.Workers = *workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *sweepStat != "" {
		sc, err := buildSweepConfig(*sweepStat, *sweepStart, *sweepStop, *sweepStep, *includeDelta, *outputDir, cfg.Player)
		if err != nil {
			fail("sweep config: %v", err)
		}
		if err := runSweep(ctx, cfg, sc); err != nil {
			fail("sweep failed: %v", err)
		}
		return
	}

	logger.Info("stat weights started", "iterations", cfg.Simulation.Iterations, "scenarios", len(engine.Scenarios)+1)
	res, err := engine.StatWeights(ctx, cfg, nil)
	if err != nil {
		fail("stat weights: %v", err)
	}
	report.PrintStatWeights(os.Stdout, res, *verbose)
}

func fail(format string, args ...any) {
	logger.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func buildSweepConfig(stat string, start, stop, step float64, includeDelta bool, outputDir string, base config.Player) (sweepConfig, error) {
	cfg := sweepConfig{
		stat:         strings.ToLower(stat),
		start:        start,
		stop:         stop,
		step:         step,
		includeDelta: includeDelta,
		outputDir:    outputDir,
	}

	var defStart, defStop, defStep float64
	switch cfg.stat {
	case "ap":
		defStart, defStop, defStep = base.AttackPower, base.AttackPower+1000, 50
	case "crit":
		defStart, defStop, defStep = 0, 50, 1
	case "hit":
		defStart, defStop, defStep = 0, 12, 0.5
	case "haste":
		defStart, defStop, defStep = 0, 30, 1
	default:
		return sweepConfig{}, fmt.Errorf("unsupported stat %q (use %s)", stat, strings.Join(engine.SweepStats, "|"))
	}
	if math.IsNaN(cfg.start) {
		cfg.start = defStart
	}
	if math.IsNaN(cfg.stop) {
		cfg.stop = defStop
	}
	if math.IsNaN(cfg.step) {
		cfg.step = defStep
	}

	if cfg.step <= 0 {
		return sweepConfig{}, fmt.Errorf("step must be > 0 (got %.2f)", cfg.step)
	}
	if cfg.stop <= cfg.start {
		return sweepConfig{}, fmt.Errorf("stop must be > start (start=%.2f, stop=%.2f)", cfg.start, cfg.stop)
	}
	return cfg, nil
}

func (s sweepConfig) values() []float64 {
	var values []float64
	for v := s.start; v <= s.stop+1e-9; v += s.step {
		values = append(values, v)
	}
	return values
}

func runSweep(ctx context.Context, cfg config.SimulationConfig, sc sweepConfig) error {
	points, err := engine.Sweep(ctx, cfg, sc.stat, sc.values())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(sc.outputDir, sc.stat+".csv")
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer file.Close()

	if err := report.WriteSweepCSV(file, points, sc.includeDelta); err != nil {
		return err
	}
	fmt.Printf("Sweep complete (%s): %d points, output=%s\n", sc.stat, len(points), outPath)
	return nil
}
