package abilities

import (
	"math"
	"time"
)

// Baseline multipliers every cat attack carries.
const (
	NaturalWeapons   = 1.10
	PredatoryStrikes = 1.20
	TigersFuryBonus  = 50.0
	ExtraAttackAP    = 315.0
	ApPerDamage      = 14.0
)

// Inputs is everything a direct damage formula reads.
type Inputs struct {
	// NormalDamage is the weapon roll plus AP bonus, before Natural Weapons.
	NormalDamage float64
	AttackPower  float64
	BaseAP       float64
	ComboPoints  int
	// ExtraEnergy is what Ferocious Bite converts after its cost.
	ExtraEnergy     float64
	ActiveBleeds    int
	OpenWounds      int
	ImprovedShred   int
	FeralAggression int
}

// Formula computes pre-crit, pre-armor direct damage without Natural Weapons.
type Formula func(in Inputs) float64

var registry = map[ID]Formula{
	Claw:          clawDamage,
	Shred:         shredDamage,
	Rake:          rakeDamage,
	FerociousBite: biteDamage,
	Rip:           func(Inputs) float64 { return 0 },
}

// Lookup returns the direct damage formula for id.
func Lookup(id ID) (Formula, bool) {
	f, ok := registry[id]
	return f, ok
}

// NormalDamage is the weapon roll plus the AP contribution, with the Tiger's
// Fury bonus when active.
func NormalDamage(roll, ap, baseAP float64, tigersFury bool) float64 {
	d := roll + (ap-baseAP)/ApPerDamage
	if tigersFury {
		d += TigersFuryBonus
	}
	return d
}

func clawDamage(in Inputs) float64 {
	d := 1.05*in.NormalDamage + 115
	if in.OpenWounds > 0 {
		d *= 1 + 0.30*float64(in.ActiveBleeds)
	}
	return d * PredatoryStrikes
}

func shredDamage(in Inputs) float64 {
	d := 2.25*in.NormalDamage + 180
	if in.ImprovedShred > 0 {
		d *= 1 + 0.05*float64(in.ImprovedShred)
	}
	return d
}

func rakeDamage(in Inputs) float64 {
	return (61 + 0.115*in.AttackPower) * PredatoryStrikes
}

func biteDamage(in Inputs) float64 {
	d := 70 + 128*float64(in.ComboPoints) + 0.07*in.AttackPower
	d *= math.Pow(1.005, in.ExtraEnergy)
	if in.FeralAggression > 0 {
		d *= 1 + 0.03*float64(in.FeralAggression)
	}
	return d
}

// DotSnapshot freezes a periodic effect's per-tick damage at application.
type DotSnapshot struct {
	Name        ID
	TickDamage  float64
	Interval    time.Duration
	Ticks       int
	ComboPoints int
	AttackPower float64
	AppliedAt   time.Duration
}

// Duration is the full length of the effect.
func (d DotSnapshot) Duration() time.Duration {
	return time.Duration(d.Ticks) * d.Interval
}

// Total is the damage of all ticks.
func (d DotSnapshot) Total() float64 {
	return d.TickDamage * float64(d.Ticks)
}

// RakeDot snapshots Rake's bleed. Idol of Savagery shortens the interval.
func RakeDot(ap float64, idolSavagery bool, now time.Duration) DotSnapshot {
	interval := 3 * time.Second
	if idolSavagery {
		interval = 2700 * time.Millisecond
	}
	total := (102 + 0.09*ap) * PredatoryStrikes
	return DotSnapshot{
		Name:        Rake,
		TickDamage:  total / 3,
		Interval:    interval,
		Ticks:       3,
		AttackPower: ap,
		AppliedAt:   now,
	}
}

// RipDot snapshots Rip for cp combo points.
func RipDot(ap, baseAP float64, cp, openWounds int, idolSavagery bool, now time.Duration) DotSnapshot {
	interval := 2 * time.Second
	if idolSavagery {
		interval = 1800 * time.Millisecond
	}
	scaled := float64(min(4, cp))
	tick := 47 + float64(cp-1)*31 + scaled/100*(ap-baseAP)
	if openWounds > 0 {
		tick *= 1 + 0.15*float64(openWounds)
	}
	return DotSnapshot{
		Name:        Rip,
		TickDamage:  tick,
		Interval:    interval,
		Ticks:       4 + cp,
		ComboPoints: cp,
		AttackPower: ap,
		AppliedAt:   now,
	}
}
