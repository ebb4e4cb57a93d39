// Package report renders simulation results for terminals and files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/engine"
)

type abilityRow struct {
	id    abilities.ID
	stats *engine.AbilityStats
}

func sortedRows(totals map[abilities.ID]*engine.AbilityStats) []abilityRow {
	rows := make([]abilityRow, 0, len(totals))
	for id, s := range totals {
		if s.Attempts > 0 || s.Ticks > 0 {
			rows = append(rows, abilityRow{id: id, stats: s})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].stats.Damage, rows[j].stats.Damage
		if di == dj {
			return rows[i].id < rows[j].id
		}
		return di > dj
	})
	return rows
}

// PrintAggregate writes the summary of a batch of runs.
func PrintAggregate(w io.Writer, agg *engine.AggregateResult) {
	n := float64(agg.Iterations)
	fmt.Fprintln(w, styleTitle.Render("Feral Cat Simulation Results"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Duration: %.0fs   Iterations: %d\n\n", agg.Duration.Seconds(), agg.Iterations)

	fmt.Fprintf(w, "Mean DPS: %s  (stddev %.2f, stderr %.2f)\n",
		styleValue.Render(strconv.FormatFloat(agg.MeanDPS, 'f', 2, 64)), agg.StdDev, agg.StdErr)
	fmt.Fprintf(w, "Min DPS:  %.2f\n", agg.MinDPS)
	fmt.Fprintf(w, "Max DPS:  %.2f\n\n", agg.MaxDPS)

	fmt.Fprintln(w, styleHeading.Render("Damage Breakdown (average per iteration)"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Ability\tCasts\tDamage\tShare\tAvg\tMin\tMax\tCrit%\tMiss%\tDodge%\tGlance%\t")

	total := 0.0
	for _, s := range agg.Totals {
		total += s.Damage
	}
	for _, row := range sortedRows(agg.Totals) {
		s := row.stats
		count := float64(s.Attempts)
		if count == 0 {
			count = float64(s.Ticks)
		}
		var avg, share, crit, miss, dodge, glance float64
		if hits := s.Hits + s.Ticks; hits > 0 {
			avg = s.Damage / float64(hits)
		}
		if total > 0 {
			share = s.Damage / total * 100
		}
		if s.Attempts > 0 {
			a := float64(s.Attempts)
			crit = float64(s.Crits) / a * 100
			miss = float64(s.Misses) / a * 100
			dodge = float64(s.Dodges) / a * 100
			glance = float64(s.Glances) / a * 100
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.0f\t%.1f%%\t%.0f\t%.0f\t%.0f\t%.1f%%\t%.1f%%\t%.1f%%\t%.1f%%\t\n",
			row.id, count/n, s.Damage/n, share, avg, s.MinDamage, s.MaxDamage, crit, miss, dodge, glance)
	}
	tw.Flush()
	fmt.Fprintln(w, rule)

	if len(agg.Casts) > 0 {
		fmt.Fprintln(w, styleHeading.Render("Casts (average per iteration)"))
		ids := make([]abilities.ID, 0, len(agg.Casts))
		for id := range agg.Casts {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			fmt.Fprintf(w, "  %-24s %6.1f\n", id, agg.Casts[id])
		}
	}
}

// PrintRun writes the summary of a single run.
func PrintRun(w io.Writer, r *engine.RunResult) {
	seed := "random"
	if r.Seed != nil {
		seed = strconv.FormatInt(*r.Seed, 10)
	}
	fmt.Fprintf(w, "%s  %.2f DPS over %.0fs (seed %s)\n",
		styleTitle.Render("Run"), r.DPS, r.Duration.Seconds(), seed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Ability\tAttempts\tTicks\tDamage\tCrits\tMisses\t")
	for _, row := range sortedRows(r.Abilities) {
		s := row.stats
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f\t%d\t%d\t\n", row.id, s.Attempts, s.Ticks, s.Damage, s.Crits, s.Misses)
	}
	tw.Flush()
	if r.LogDropped > 0 {
		fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("(%d log entries dropped)", r.LogDropped)))
	}
}

// WriteCombatLog writes one line per log entry.
func WriteCombatLog(w io.Writer, entries []engine.LogEntry) error {
	for _, e := range entries {
		line := fmt.Sprintf("[%6.2fs] %-6s %-22s %-7s", e.Time, e.Event, e.Ability, e.Outcome)
		if dmg := e.Damage(); dmg > 0 {
			line += fmt.Sprintf(" %6.0f", dmg)
		}
		line += fmt.Sprintf(" | E %3.0f (%+.0f) CP %d AP %.0f", e.Energy, e.EnergyChange, e.ComboPoints, e.AttackPower)
		if e.Info != "" {
			line += " " + e.Info
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintStatWeights writes the weight table.
func PrintStatWeights(w io.Writer, res *engine.StatWeightResult, verbose bool) {
	fmt.Fprintf(w, "%s (paired seeds from %d, %d iterations)\n",
		styleTitle.Render("Stat Weights"), engine.StatWeightSeed, res.Iterations)
	fmt.Fprintf(w, "Baseline DPS: %.2f ± %.2f   DPS per AP: %.4f\n\n", res.BaseDPS, res.BaseStdErr, res.DPSPerAP)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if verbose {
		fmt.Fprintln(tw, "Stat\tDelta\tWeight\t±\tDPS/Unit\tDPS\tΔDPS")
	} else {
		fmt.Fprintln(tw, "Stat\tDelta\tWeight\t±")
	}
	for _, sw := range res.Weights {
		if verbose {
			fmt.Fprintf(tw, "%s\t%+g %s\t%.3f\t%.3f\t%.3f\t%.2f\t%+.2f\n",
				sw.Stat, sw.Delta, sw.Unit, sw.Weight, sw.StdErr, sw.PerUnit, sw.MeanDPS, sw.DPSDelta)
		} else {
			fmt.Fprintf(tw, "%s\t%+g %s\t%.3f\t%.3f\n", sw.Stat, sw.Delta, sw.Unit, sw.Weight, sw.StdErr)
		}
	}
	tw.Flush()
}

// WriteSweepCSV writes stat_value,dps[,dps_per_point] rows.
func WriteSweepCSV(w io.Writer, points []engine.SweepPoint, includeDelta bool) error {
	writer := csv.NewWriter(w)
	header := []string{"stat_value", "dps"}
	if includeDelta {
		header = append(header, "dps_per_point")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, p := range points {
		record := []string{
			strconv.FormatFloat(p.Value, 'f', 4, 64),
			strconv.FormatFloat(p.DPS, 'f', 4, 64),
		}
		if includeDelta {
			if i == 0 || p.Value == points[i-1].Value {
				record = append(record, "")
			} else {
				prev := points[i-1]
				record = append(record, strconv.FormatFloat((p.DPS-prev.DPS)/(p.Value-prev.Value), 'f', 6, 64))
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
