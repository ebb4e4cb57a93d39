package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"turtle-feral-sim/internal/config"
)

// StatWeightSeed is the first seed of the paired runs; iteration i of every
// scenario uses StatWeightSeed+i.
const StatWeightSeed = 1337

const minDPSPerAP = 0.0001

// Scenario is one stat increment evaluated against the base stat block.
type Scenario struct {
	Name  string
	Unit  string
	Delta float64
	Apply func(p *config.Player)
}

// APScenario is the reference every weight is expressed in.
var APScenario = Scenario{Name: "Attack Power", Unit: "AP", Delta: 50, Apply: func(p *config.Player) {
	p.AttackPower += 50
}}

// Scenarios are the stat increments measured by StatWeights.
var Scenarios = []Scenario{
	APScenario,
	{Name: "Strength", Unit: "Str", Delta: 25, Apply: func(p *config.Player) {
		p.Strength += 25
		p.AttackPower += 50
	}},
	{Name: "Agility", Unit: "Agi", Delta: 25, Apply: func(p *config.Player) {
		p.Agility += 25
		p.AttackPower += 25
		p.CritPercent += 1.25
	}},
	{Name: "Hit", Unit: "% hit", Delta: 1, Apply: func(p *config.Player) { p.HitPercent++ }},
	{Name: "Crit", Unit: "% crit", Delta: 1, Apply: func(p *config.Player) { p.CritPercent++ }},
	{Name: "Haste", Unit: "% haste", Delta: 1, Apply: func(p *config.Player) { p.HastePct++ }},
}

// StatWeight is the AP equivalent of one unit of a stat.
type StatWeight struct {
	Stat     string  `json:"stat"`
	Unit     string  `json:"unit"`
	Delta    float64 `json:"delta"`
	MeanDPS  float64 `json:"mean_dps"`
	DPSDelta float64 `json:"dps_delta"`
	PerUnit  float64 `json:"dps_per_unit"`
	Weight   float64 `json:"weight"`
	StdErr   float64 `json:"std_err"`
}

// StatWeightResult holds the base scenario and every weight.
type StatWeightResult struct {
	Iterations int          `json:"iterations"`
	BaseDPS    float64      `json:"base_dps"`
	BaseStdErr float64      `json:"base_std_err"`
	DPSPerAP   float64      `json:"dps_per_ap"`
	Weights    []StatWeight `json:"weights"`
}

// pairedConfig fixes the seed and enables duration jitter so that every
// scenario replays the same fights.
func pairedConfig(cfg config.SimulationConfig) config.SimulationConfig {
	out := cfg.WithSeed(StatWeightSeed)
	out.Simulation.VaryDuration = true
	return out
}

// StatWeights runs the base scenario and each of Scenarios under the same
// seeds and derives the weight of every stat relative to Attack Power.
func StatWeights(ctx context.Context, cfg config.SimulationConfig, progress func(done, total int)) (*StatWeightResult, error) {
	paired := pairedConfig(cfg.Normalize())
	n := paired.Simulation.Iterations
	total := n * (len(Scenarios) + 1)
	step := 0

	run := func(c config.SimulationConfig) ([]float64, error) {
		offset := step * n
		step++
		opts := RunOptions{}
		if progress != nil {
			opts.Progress = func(done, _ int) { progress(offset+done, total) }
		}
		agg, err := RunMany(ctx, c, opts)
		if err != nil {
			return nil, err
		}
		return agg.DPS, nil
	}

	base, err := run(paired)
	if err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}
	baseMean, _, baseSE := summarize(base)
	out := &StatWeightResult{Iterations: n, BaseDPS: baseMean, BaseStdErr: baseSE}

	diffs := make([][]float64, len(Scenarios))
	for i, sc := range Scenarios {
		c := paired.Clone()
		sc.Apply(&c.Player)
		dps, err := run(c)
		if err != nil {
			return nil, fmt.Errorf("%s scenario: %w", strings.ToLower(sc.Name), err)
		}
		d := make([]float64, n)
		for j := range d {
			d[j] = (dps[j] - base[j]) / sc.Delta
		}
		diffs[i] = d
		mean, _ := stats.Mean(dps)
		out.Weights = append(out.Weights, StatWeight{
			Stat:     sc.Name,
			Unit:     sc.Unit,
			Delta:    sc.Delta,
			MeanDPS:  mean,
			DPSDelta: mean - baseMean,
		})
	}

	apDiff := diffs[0]
	perAP, _ := stats.Mean(apDiff)
	out.DPSPerAP = math.Max(perAP, minDPSPerAP)
	for i := range out.Weights {
		w := &out.Weights[i]
		w.PerUnit, _ = stats.Mean(diffs[i])
		if i == 0 {
			w.Weight = 1
			continue
		}
		w.Weight = math.Max(0, w.PerUnit/out.DPSPerAP)
		w.StdErr = ratioStdErr(diffs[i], apDiff, w.Weight, out.DPSPerAP)
	}
	return out, nil
}

// ratioStdErr propagates the paired per-iteration differences x and y into
// the standard error of mean(x)/mean(y).
func ratioStdErr(x, y []float64, w, meanY float64) float64 {
	n := len(x)
	if n < 2 || meanY == 0 {
		return 0
	}
	vx, _ := stats.SampleVariance(x)
	vy, _ := stats.SampleVariance(y)
	cov, _ := stats.Covariance(x, y)
	v := (vx - 2*w*cov + w*w*vy) / (meanY * meanY) / float64(n)
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// SweepPoint is the mean DPS at one value of a swept stat.
type SweepPoint struct {
	Value float64 `json:"value"`
	DPS   float64 `json:"dps"`
}

// SweepStats lists the stats Sweep accepts.
var SweepStats = []string{"ap", "crit", "hit", "haste"}

func setStat(p *config.Player, stat string, v float64) error {
	switch stat {
	case "ap":
		p.AttackPower = v
	case "crit":
		p.CritPercent = v
	case "hit":
		p.HitPercent = v
	case "haste":
		p.HastePct = v
	default:
		return fmt.Errorf("unsupported stat %q (use %s)", stat, strings.Join(SweepStats, "|"))
	}
	return nil
}

// Sweep sets stat to each of values in turn and records the mean DPS under
// the paired seeds.
func Sweep(ctx context.Context, cfg config.SimulationConfig, stat string, values []float64) ([]SweepPoint, error) {
	stat = strings.ToLower(strings.TrimSpace(stat))
	paired := pairedConfig(cfg.Normalize())
	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		c := paired.Clone()
		if err := setStat(&c.Player, stat, v); err != nil {
			return nil, err
		}
		agg, err := RunMany(ctx, c, RunOptions{})
		if err != nil {
			return nil, fmt.Errorf("%s=%v: %w", stat, v, err)
		}
		points = append(points, SweepPoint{Value: v, DPS: agg.MeanDPS})
	}
	return points, nil
}
