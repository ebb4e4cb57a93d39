package engine

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"turtle-feral-sim/internal/config"
)

func batch(n, workers int) config.SimulationConfig {
	cfg := seeded(100)
	cfg.Simulation.DurationSeconds = 60
	cfg.Simulation.Iterations = n
	cfg.Simulation.Workers = workers
	return cfg
}

func TestRunManyAggregationIdentity(t *testing.T) {
	var calls atomic.Int64
	agg, err := RunMany(context.Background(), batch(24, 4), RunOptions{
		KeepLogs: true,
		Progress: func(done, total int) {
			calls.Add(1)
			if total != 24 || done < 1 || done > total {
				t.Errorf("progress %d/%d", done, total)
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 24 {
		t.Errorf("progress called %d times", calls.Load())
	}
	if len(agg.DPS) != 24 {
		t.Fatalf("%d dps values", len(agg.DPS))
	}

	sum, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
	for _, d := range agg.DPS {
		sum += d
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	if math.Abs(agg.MeanDPS-sum/24) > 1e-9 {
		t.Errorf("mean %v, want %v", agg.MeanDPS, sum/24)
	}
	if agg.MinDPS != lo || agg.MaxDPS != hi {
		t.Errorf("min/max %v/%v, want %v/%v", agg.MinDPS, agg.MaxDPS, lo, hi)
	}
	if agg.MinRun == nil || agg.MinRun.DPS != lo || agg.MaxRun == nil || agg.MaxRun.DPS != hi {
		t.Fatal("min/max runs not kept")
	}
	if len(agg.MinRun.Log) == 0 || len(agg.MaxRun.Log) == 0 {
		t.Error("min/max runs lost their logs")
	}
	if agg.StdDev <= 0 || math.Abs(agg.StdErr-agg.StdDev/math.Sqrt(24)) > 1e-9 {
		t.Errorf("stddev %v stderr %v", agg.StdDev, agg.StdErr)
	}

	damage := 0.0
	for _, d := range agg.AbilityDamage {
		damage += d
	}
	if math.Abs(damage/60-agg.MeanDPS) > 1e-6 {
		t.Errorf("averaged ability damage %v does not match mean dps %v", damage/60, agg.MeanDPS)
	}
}

func TestRunManyIndependentOfWorkers(t *testing.T) {
	serial, err := RunMany(context.Background(), batch(12, 1), RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := RunMany(context.Background(), batch(12, 6), RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range serial.DPS {
		if serial.DPS[i] != parallel.DPS[i] {
			t.Errorf("run %d: %v vs %v", i, serial.DPS[i], parallel.DPS[i])
		}
	}
	if serial.MeanDPS != parallel.MeanDPS {
		t.Errorf("mean %v vs %v", serial.MeanDPS, parallel.MeanDPS)
	}
}

func TestRunManySingleIteration(t *testing.T) {
	cfg := batch(0, 0)
	agg, err := RunMany(context.Background(), cfg, RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if agg.Iterations != 1 || agg.StdDev != 0 || agg.StdErr != 0 {
		t.Errorf("iterations %d stddev %v stderr %v", agg.Iterations, agg.StdDev, agg.StdErr)
	}
	if agg.MinRun != agg.MaxRun {
		t.Error("single run should be both min and max")
	}
}

func TestRunManyErrors(t *testing.T) {
	cfg := batch(4, 2)
	cfg.Simulation.DurationSeconds = -1
	if _, err := RunMany(context.Background(), cfg, RunOptions{}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration: err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunMany(ctx, batch(4, 2), RunOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: err = %v", err)
	}
}

func TestIterationConfig(t *testing.T) {
	cfg := batch(11, 1)
	cfg.Simulation.VaryDuration = true
	cfg.Simulation.DurationSeconds = 60

	tests := []struct {
		i        int
		seed     int64
		duration time.Duration
	}{
		{0, 100, 40 * time.Second},
		{1, 101, 44 * time.Second},
		{5, 105, 60 * time.Second},
		{10, 110, 80 * time.Second},
	}
	for _, tt := range tests {
		got := IterationConfig(cfg, tt.i, 11)
		if got.Simulation.Seed == nil || *got.Simulation.Seed != tt.seed {
			t.Errorf("i=%d seed %v, want %d", tt.i, got.Simulation.Seed, tt.seed)
		}
		if d := time.Duration(got.Simulation.DurationSeconds * float64(time.Second)); d != tt.duration {
			t.Errorf("i=%d duration %v, want %v", tt.i, d, tt.duration)
		}
	}
	if *cfg.Simulation.Seed != 100 {
		t.Error("IterationConfig changed the input seed")
	}

	cfg.Simulation.Seed = nil
	if got := IterationConfig(cfg, 3, 10); got.Simulation.Seed != nil {
		t.Error("unseeded config gained a seed")
	}

	cfg.Simulation.DurationSeconds = 12
	if got := IterationConfig(cfg, 0, 11); got.Simulation.DurationSeconds != 10 {
		t.Errorf("short fight jittered to %vs, want the 10s floor", got.Simulation.DurationSeconds)
	}
	if got := IterationConfig(cfg, 0, 1); got.Simulation.DurationSeconds != 12 {
		t.Errorf("single iteration jittered to %vs", got.Simulation.DurationSeconds)
	}
}

func TestStatWeightDurationsStayNearFightLength(t *testing.T) {
	for _, n := range []int{2, 21, 1000} {
		cfg := config.Defaults()
		cfg.Simulation.Iterations = n
		paired := pairedConfig(cfg.Normalize())
		want := time.Duration(paired.Simulation.DurationSeconds * float64(time.Second))

		for i := 0; i < n; i++ {
			got := time.Duration(IterationConfig(paired, i, n).Simulation.DurationSeconds * float64(time.Second))
			if got < want-20*time.Second-time.Millisecond || got > want+20*time.Second+time.Millisecond {
				t.Fatalf("n=%d i=%d: duration %v outside %v±20s", n, i, got, want)
			}
		}
	}
}

func TestStatWeights(t *testing.T) {
	cfg := seeded(1)
	cfg.Simulation.DurationSeconds = 60
	cfg.Simulation.Iterations = 6
	cfg.Simulation.Workers = 3

	res, err := StatWeights(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Weights) != len(Scenarios) {
		t.Fatalf("%d weights, want %d", len(res.Weights), len(Scenarios))
	}
	if res.Weights[0].Stat != APScenario.Name || res.Weights[0].Weight != 1 {
		t.Errorf("attack power weight = %v, want exactly 1", res.Weights[0].Weight)
	}
	if res.DPSPerAP < minDPSPerAP {
		t.Errorf("dps per ap %v below floor", res.DPSPerAP)
	}
	for _, w := range res.Weights {
		if w.Weight < 0 || math.IsNaN(w.Weight) {
			t.Errorf("%s weight %v", w.Stat, w.Weight)
		}
		if w.StdErr < 0 || math.IsNaN(w.StdErr) {
			t.Errorf("%s std err %v", w.Stat, w.StdErr)
		}
	}
}

func TestSweep(t *testing.T) {
	cfg := seeded(1)
	cfg.Simulation.DurationSeconds = 30
	cfg.Simulation.Iterations = 4

	points, err := Sweep(context.Background(), cfg, "AP", []float64{800, 1600})
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 || points[0].Value != 800 || points[1].Value != 1600 {
		t.Fatalf("points = %+v", points)
	}
	if points[1].DPS <= points[0].DPS {
		t.Errorf("doubling AP did not raise dps: %+v", points)
	}

	if _, err := Sweep(context.Background(), cfg, "spirit", []float64{1}); err == nil {
		t.Error("unknown stat accepted")
	}
}

func TestRatioStdErr(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	if got := ratioStdErr(x, x, 1, 2.5); got != 0 {
		t.Errorf("identical series: %v, want 0", got)
	}
	if got := ratioStdErr([]float64{1}, []float64{1}, 1, 1); got != 0 {
		t.Errorf("single pair: %v", got)
	}

	tests := []struct {
		name  string
		y     []float64
		w     float64
		meanY float64
		want  float64
	}{
		// var(x)=5/3, var(y)=0: sqrt(5/3 / 2² / 4)
		{"constant denominator", []float64{2, 2, 2, 2}, 1.25, 2, math.Sqrt(5.0 / 48)},
		// var(x)=5/3, var(y)=2/3, cov=1, w=2.5/3: sqrt((5/3 − 5/3 + 25/54) / 3² / 4)
		{"correlated", []float64{2, 3, 3, 4}, 2.5 / 3, 3, math.Sqrt(25.0 / 1944)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ratioStdErr(x, tt.y, tt.w, tt.meanY); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ratioStdErr = %v, want %v", got, tt.want)
			}
		})
	}
}
