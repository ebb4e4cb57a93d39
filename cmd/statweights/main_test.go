package main

import (
	"math"
	"testing"

	"turtle-feral-sim/internal/config"
)

func TestBuildSweepConfig(t *testing.T) {
	nan := math.NaN()
	base := config.Player{AttackPower: 1200}

	tests := []struct {
		name    string
		stat    string
		start   float64
		stop    float64
		step    float64
		wantN   int
		wantErr bool
	}{
		{name: "ap defaults", stat: "AP", start: nan, stop: nan, step: nan, wantN: 21},
		{name: "crit explicit", stat: "crit", start: 10, stop: 12, step: 0.5, wantN: 5},
		{name: "unknown stat", stat: "spirit", start: nan, stop: nan, step: nan, wantErr: true},
		{name: "zero step", stat: "hit", start: 0, stop: 5, step: 0, wantErr: true},
		{name: "inverted range", stat: "haste", start: 5, stop: 1, step: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := buildSweepConfig(tt.stat, tt.start, tt.stop, tt.step, true, t.TempDir(), base)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := len(sc.values()); got != tt.wantN {
				t.Errorf("%d sweep points, want %d", got, tt.wantN)
			}
		})
	}
}
