package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/config"
	"turtle-feral-sim/internal/engine"
)

func sampleAggregate(t *testing.T) *engine.AggregateResult {
	t.Helper()
	cfg := config.Defaults()
	cfg.Player.AttackPower = 1000
	cfg.Rotation.UseRip = true
	cfg.Rotation.UseShred = true
	cfg.Simulation.DurationSeconds = 30
	cfg.Simulation.Iterations = 4
	cfg = cfg.WithSeed(3)
	agg, err := engine.RunMany(context.Background(), cfg, engine.RunOptions{KeepLogs: true})
	if err != nil {
		t.Fatal(err)
	}
	return agg
}

func TestPrintAggregate(t *testing.T) {
	agg := sampleAggregate(t)
	var buf bytes.Buffer
	PrintAggregate(&buf, agg)
	out := buf.String()
	for _, want := range []string{"Mean DPS", "Iterations: 4", string(abilities.AutoAttack), string(abilities.Shred)} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrintRunAndCombatLog(t *testing.T) {
	agg := sampleAggregate(t)
	var buf bytes.Buffer
	PrintRun(&buf, agg.MaxRun)
	if !strings.Contains(buf.String(), "seed") {
		t.Errorf("run summary = %q", buf.String())
	}

	buf.Reset()
	if err := WriteCombatLog(&buf, agg.MaxRun.Log); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(agg.MaxRun.Log) {
		t.Fatalf("%d lines for %d entries", len(lines), len(agg.MaxRun.Log))
	}
	if !strings.HasPrefix(lines[0], "[  0.00s]") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestPrintStatWeights(t *testing.T) {
	res := &engine.StatWeightResult{
		Iterations: 10,
		BaseDPS:    900,
		DPSPerAP:   0.4,
		Weights: []engine.StatWeight{
			{Stat: "Attack Power", Unit: "AP", Delta: 50, Weight: 1},
			{Stat: "Crit", Unit: "% crit", Delta: 1, Weight: 28.5, StdErr: 1.2},
		},
	}
	for _, verbose := range []bool{false, true} {
		var buf bytes.Buffer
		PrintStatWeights(&buf, res, verbose)
		if !strings.Contains(buf.String(), "28.500") {
			t.Errorf("verbose=%v output = %q", verbose, buf.String())
		}
	}
}

func TestWriteSweepCSV(t *testing.T) {
	points := []engine.SweepPoint{{Value: 0, DPS: 800}, {Value: 10, DPS: 850}}
	var buf bytes.Buffer
	if err := WriteSweepCSV(&buf, points, true); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("%d records", len(records))
	}
	if records[0][2] != "dps_per_point" || records[1][2] != "" || records[2][2] != "5.000000" {
		t.Errorf("records = %v", records)
	}
}

func TestProgressModel(t *testing.T) {
	cancelled := false
	m := newProgressModel("Simulating", func() { cancelled = true })

	next, _ := m.Update(ProgressMsg{Done: 25, Total: 100})
	m = next.(progressModel)
	if m.percent() != 0.25 {
		t.Errorf("percent = %v", m.percent())
	}
	if !strings.Contains(m.View(), "25/100 runs") {
		t.Errorf("view = %q", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(progressModel)
	if !cancelled {
		t.Error("ctrl+c did not cancel")
	}

	next, cmd := m.Update(finishedMsg{err: context.Canceled})
	m = next.(progressModel)
	if !m.finished || m.err != context.Canceled || cmd == nil {
		t.Errorf("finished=%v err=%v cmd=%v", m.finished, m.err, cmd)
	}
	if m.View() != "" {
		t.Error("finished view should be empty")
	}
}
