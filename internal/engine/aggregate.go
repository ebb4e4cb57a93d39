package engine

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/config"
)

const (
	jitterSpread   = 20 * time.Second
	minJitteredDur = 10 * time.Second
)

// RunOptions controls a batch of runs.
type RunOptions struct {
	// KeepLogs records the combat log of the min and max DPS runs.
	KeepLogs bool
	// Progress, when set, is called after every finished run.
	Progress func(done, total int)
}

// AggregateResult summarises N independent runs of one configuration.
type AggregateResult struct {
	Iterations int           `json:"iterations"`
	Duration   time.Duration `json:"duration"`
	MeanDPS    float64       `json:"mean_dps"`
	StdDev     float64       `json:"std_dev"`
	StdErr     float64       `json:"std_err"`
	MinDPS     float64       `json:"min_dps"`
	MaxDPS     float64       `json:"max_dps"`
	MinRun     *RunResult    `json:"min_run"`
	MaxRun     *RunResult    `json:"max_run"`
	DPS        []float64     `json:"dps"`

	// Per-ability values averaged over all runs.
	AbilityDamage map[abilities.ID]float64 `json:"ability_damage"`
	AbilityCount  map[abilities.ID]float64 `json:"ability_count"`
	Casts         map[abilities.ID]float64 `json:"casts"`

	// Per-ability outcome counts summed over all runs.
	Totals map[abilities.ID]*AbilityStats `json:"totals"`
}

// Misses returns the summed miss count of every ability.
func (a *AggregateResult) Misses() map[abilities.ID]int {
	return a.count(func(s *AbilityStats) int { return s.Misses })
}

// Dodges returns the summed dodge count of every ability.
func (a *AggregateResult) Dodges() map[abilities.ID]int {
	return a.count(func(s *AbilityStats) int { return s.Dodges })
}

// Parries returns the summed parry count of every ability.
func (a *AggregateResult) Parries() map[abilities.ID]int {
	return a.count(func(s *AbilityStats) int { return s.Parries })
}

// Crits returns the summed crit count of every ability.
func (a *AggregateResult) Crits() map[abilities.ID]int {
	return a.count(func(s *AbilityStats) int { return s.Crits })
}

// Glances returns the summed glance count of every ability.
func (a *AggregateResult) Glances() map[abilities.ID]int {
	return a.count(func(s *AbilityStats) int { return s.Glances })
}

// Blocks returns the summed block count of every ability.
func (a *AggregateResult) Blocks() map[abilities.ID]int {
	return a.count(func(s *AbilityStats) int { return s.Blocks })
}

func (a *AggregateResult) count(field func(*AbilityStats) int) map[abilities.ID]int {
	out := make(map[abilities.ID]int, len(a.Totals))
	for id, s := range a.Totals {
		out[id] = field(s)
	}
	return out
}

// IterationConfig returns the configuration of run i out of n: the seed is
// offset by i and, with VaryDuration, the duration is spread around the
// configured value, evenly from -20s to +20s.
func IterationConfig(cfg config.SimulationConfig, i, n int) config.SimulationConfig {
	out := cfg.Clone()
	if cfg.Simulation.Seed != nil {
		out.Simulation.Seed = nil
		out = out.WithSeed(*cfg.Simulation.Seed + int64(i))
	}
	if cfg.Simulation.VaryDuration && n > 1 {
		d := time.Duration(cfg.Simulation.DurationSeconds*float64(time.Second)) -
			jitterSpread + 2*jitterSpread*time.Duration(i)/time.Duration(n-1)
		if d < minJitteredDur {
			d = minJitteredDur
		}
		out.Simulation.DurationSeconds = d.Seconds()
	}
	return out
}

// collector merges finished runs. Only the current min and max runs keep
// their combat logs.
type collector struct {
	mu     sync.Mutex
	agg    *AggregateResult
	minIdx int
	maxIdx int
}

func (c *collector) add(i int, r *RunResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := c.agg
	a.DPS[i] = r.DPS
	for id, s := range r.Abilities {
		a.AbilityDamage[id] += s.Damage
		a.AbilityCount[id] += float64(s.Attempts + s.Ticks)
		t, ok := a.Totals[id]
		if !ok {
			t = newAbilityStats()
			a.Totals[id] = t
		}
		t.add(s)
	}
	for id, n := range r.Casts {
		a.Casts[id] += float64(n)
	}

	keep := false
	if a.MinRun == nil || r.DPS < a.MinDPS || (r.DPS == a.MinDPS && i < c.minIdx) {
		a.MinRun, a.MinDPS, c.minIdx = r, r.DPS, i
		keep = true
	}
	if a.MaxRun == nil || r.DPS > a.MaxDPS || (r.DPS == a.MaxDPS && i < c.maxIdx) {
		a.MaxRun, a.MaxDPS, c.maxIdx = r, r.DPS, i
		keep = true
	}
	if !keep {
		r.Log = nil
	}
}

// RunMany simulates cfg.Simulation.Iterations independent runs on up to
// cfg.Simulation.Workers goroutines (GOMAXPROCS when zero).
func RunMany(ctx context.Context, cfg config.SimulationConfig, opts RunOptions) (*AggregateResult, error) {
	if err := checkDuration(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalize()
	n := cfg.Simulation.Iterations
	workers := cfg.Simulation.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	c := &collector{agg: &AggregateResult{
		Iterations:    n,
		Duration:      time.Duration(cfg.Simulation.DurationSeconds * float64(time.Second)),
		DPS:           make([]float64, n),
		AbilityDamage: make(map[abilities.ID]float64),
		AbilityCount:  make(map[abilities.ID]float64),
		Casts:         make(map[abilities.ID]float64),
		Totals:        make(map[abilities.ID]*AbilityStats),
	}}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			sim := NewSimulator(IterationConfig(cfg, i, n), opts.KeepLogs)
			r, err := sim.Run(gctx)
			if err != nil {
				return fmt.Errorf("iteration %d: %w", i+1, err)
			}
			c.add(i, r)
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := c.agg
	for id := range a.AbilityDamage {
		a.AbilityDamage[id] /= float64(n)
		a.AbilityCount[id] /= float64(n)
	}
	for id := range a.Casts {
		a.Casts[id] /= float64(n)
	}
	for _, s := range a.Totals {
		if s.MinDamage == math.MaxFloat64 {
			s.MinDamage = 0
		}
	}

	mean, sd, se := summarize(a.DPS)
	a.MeanDPS, a.StdDev, a.StdErr = mean, sd, se
	return a, nil
}

// summarize returns the mean, sample standard deviation and standard error.
func summarize(xs []float64) (mean, sd, se float64) {
	mean, _ = stats.Mean(xs)
	if len(xs) < 2 {
		return mean, 0, 0
	}
	sd, _ = stats.StandardDeviationSample(xs)
	return mean, sd, sd / math.Sqrt(float64(len(xs)))
}
