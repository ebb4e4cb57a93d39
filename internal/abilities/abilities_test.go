package abilities

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeCosts(t *testing.T) {
	tests := []struct {
		name string
		mods CostModifiers
		ooc  bool
		want Costs
	}{
		{
			name: "baseline",
			want: Costs{Claw: 45, Rake: 40, Shred: 60, Rip: 30, Bite: 35, TigersFury: 30},
		},
		{
			name: "talents and gear",
			mods: CostModifiers{Ferocity: 5, ImprovedShred: 2, Cenarion5p: true, Genesis3p: true, IdolFerocity: true},
			want: Costs{Claw: 34, Rake: 29, Shred: 45, Rip: 30, Bite: 35, TigersFury: 25},
		},
		{
			name: "clearcasting",
			mods: CostModifiers{Ferocity: 5},
			ooc:  true,
			want: Costs{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeCosts(tt.mods, tt.ooc); got != tt.want {
				t.Errorf("ComputeCosts = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCostsOf(t *testing.T) {
	c := ComputeCosts(CostModifiers{}, false)
	if c.Of(Shred) != 60 || c.Of(FerociousBite) != 35 || c.Of(TigersFury) != 30 {
		t.Errorf("Of returned wrong prices: %+v", c)
	}
	if c.Of(AutoAttack) != 0 {
		t.Error("auto attack has no cost")
	}
}

func TestClassification(t *testing.T) {
	for _, id := range []ID{Claw, Shred, Rake} {
		if !id.IsBuilder() || id.IsFinisher() || !id.IsYellow() {
			t.Errorf("%s should be a yellow builder", id)
		}
	}
	for _, id := range []ID{Rip, FerociousBite} {
		if id.IsBuilder() || !id.IsFinisher() {
			t.Errorf("%s should be a finisher", id)
		}
	}
	if AutoAttack.IsYellow() || TigersFury.IsYellow() {
		t.Error("white swings and buffs are not yellow")
	}
}

func TestDirectFormulas(t *testing.T) {
	normal := NormalDamage(80, 1009, 295, false) // 80 + 714/14 = 131
	if !approx(normal, 131) {
		t.Fatalf("NormalDamage = %v, want 131", normal)
	}
	if got := NormalDamage(80, 1009, 295, true); !approx(got, 181) {
		t.Errorf("NormalDamage with Tiger's Fury = %v, want 181", got)
	}

	tests := []struct {
		id   ID
		in   Inputs
		want float64
	}{
		{Claw, Inputs{NormalDamage: 100}, (105 + 115) * 1.20},
		{Claw, Inputs{NormalDamage: 100, OpenWounds: 3, ActiveBleeds: 2}, (105 + 115) * 1.6 * 1.20},
		{Claw, Inputs{NormalDamage: 100, ActiveBleeds: 2}, (105 + 115) * 1.20},
		{Shred, Inputs{NormalDamage: 100}, 405},
		{Shred, Inputs{NormalDamage: 100, ImprovedShred: 2}, 405 * 1.10},
		{Rake, Inputs{AttackPower: 1000}, (61 + 115) * 1.20},
		{FerociousBite, Inputs{AttackPower: 1000, ComboPoints: 5}, 70 + 640 + 70},
		{FerociousBite, Inputs{AttackPower: 1000, ComboPoints: 5, ExtraEnergy: 20, FeralAggression: 5}, 780 * math.Pow(1.005, 20) * 1.15},
		{Rip, Inputs{AttackPower: 1000, ComboPoints: 5}, 0},
	}
	for _, tt := range tests {
		f, ok := Lookup(tt.id)
		if !ok {
			t.Fatalf("no formula for %s", tt.id)
		}
		if got := f(tt.in); !approx(got, tt.want) {
			t.Errorf("%s(%+v) = %v, want %v", tt.id, tt.in, got, tt.want)
		}
	}
	if _, ok := Lookup(TigersFury); ok {
		t.Error("Tiger's Fury deals no direct damage")
	}
}

func TestRipDot(t *testing.T) {
	d := RipDot(1000, 295, 5, 3, false, time.Second)
	if d.Ticks != 9 {
		t.Errorf("ticks = %d, want 9", d.Ticks)
	}
	if !approx(d.TickDamage, 288.84) {
		t.Errorf("tick = %v, want 288.84", d.TickDamage)
	}
	if d.Interval != 2*time.Second || d.Duration() != 18*time.Second {
		t.Errorf("interval %v duration %v", d.Interval, d.Duration())
	}
	if !approx(d.Total(), 9*288.84) {
		t.Errorf("total = %v", d.Total())
	}

	idol := RipDot(1000, 295, 1, 0, true, 0)
	if idol.Ticks != 5 || idol.Interval != 1800*time.Millisecond {
		t.Errorf("idol rip = %+v", idol)
	}
	if !approx(idol.TickDamage, 47+0.01*705) {
		t.Errorf("1cp tick = %v", idol.TickDamage)
	}
}

func TestRakeDot(t *testing.T) {
	d := RakeDot(1000, false, 0)
	if d.Ticks != 3 || d.Interval != 3*time.Second {
		t.Errorf("rake = %+v", d)
	}
	if !approx(d.Total(), (102+90)*1.20) {
		t.Errorf("total = %v", d.Total())
	}
	if RakeDot(1000, true, 0).Duration() != 8100*time.Millisecond {
		t.Error("idol should shorten rake to 8.1s")
	}
}
