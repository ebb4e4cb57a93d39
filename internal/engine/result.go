package engine

import (
	"math"
	"time"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/combat"
)

// MaxLogEntries caps the combat log of one run.
const MaxLogEntries = 3500

// Log event categories.
const (
	EventCast   = "Cast"
	EventDamage = "Damage"
	EventTick   = "Tick"
	EventBuff   = "Buff"
)

// AbilityStats keeps per-source performance details for one run.
type AbilityStats struct {
	Attempts  int     `json:"attempts"`
	Hits      int     `json:"hits"`
	Crits     int     `json:"crits"`
	Misses    int     `json:"misses"`
	Dodges    int     `json:"dodges"`
	Parries   int     `json:"parries"`
	Glances   int     `json:"glances"`
	Blocks    int     `json:"blocks"`
	Ticks     int     `json:"ticks"`
	Damage    float64 `json:"damage"`
	MinDamage float64 `json:"min_damage"`
	MaxDamage float64 `json:"max_damage"`
}

func newAbilityStats() *AbilityStats {
	return &AbilityStats{MinDamage: math.MaxFloat64}
}

func (s *AbilityStats) recordOutcome(o combat.Outcome) {
	s.Attempts++
	switch o {
	case combat.Miss:
		s.Misses++
	case combat.Dodge:
		s.Dodges++
	case combat.Parry:
		s.Parries++
	case combat.Glance:
		s.Glances++
		s.Hits++
	case combat.Block:
		s.Blocks++
		s.Hits++
	case combat.Crit:
		s.Crits++
		s.Hits++
	default:
		s.Hits++
	}
}

func (s *AbilityStats) recordDamage(dmg float64) {
	s.Damage += dmg
	if dmg < s.MinDamage {
		s.MinDamage = dmg
	}
	if dmg > s.MaxDamage {
		s.MaxDamage = dmg
	}
}

func (s *AbilityStats) add(other *AbilityStats) {
	s.Attempts += other.Attempts
	s.Hits += other.Hits
	s.Crits += other.Crits
	s.Misses += other.Misses
	s.Dodges += other.Dodges
	s.Parries += other.Parries
	s.Glances += other.Glances
	s.Blocks += other.Blocks
	s.Ticks += other.Ticks
	s.Damage += other.Damage
	if other.MinDamage < s.MinDamage {
		s.MinDamage = other.MinDamage
	}
	if other.MaxDamage > s.MaxDamage {
		s.MaxDamage = other.MaxDamage
	}
}

// LogEntry is one row of the combat log.
type LogEntry struct {
	Time          float64            `json:"t"`
	Event         string             `json:"event"`
	Ability       string             `json:"ability"`
	Outcome       string             `json:"result"`
	DamageNormal  float64            `json:"dmg_norm"`
	DamageCrit    float64            `json:"dmg_crit"`
	DamageTick    float64            `json:"dmg_tick"`
	DamageSpecial float64            `json:"dmg_spec"`
	RakeRemaining float64            `json:"rem_rake"`
	RipRemaining  float64            `json:"rem_rip"`
	FFRemaining   float64            `json:"rem_ff"`
	OoCRemaining  float64            `json:"ooc"`
	TFRemaining   float64            `json:"tf"`
	ActiveBuffs   map[string]float64 `json:"active_buffs,omitempty"`
	EnergyChange  float64            `json:"energy_change"`
	ComboPoints   int                `json:"cp"`
	AttackPower   float64            `json:"ap"`
	HastePct      float64            `json:"haste"`
	WeaponSpeed   float64            `json:"speed"`
	ArmorPen      float64            `json:"arp"`
	Mana          float64            `json:"mana"`
	Energy        float64            `json:"energy"`
	Info          string             `json:"info,omitempty"`
}

// Damage is the total damage carried by the entry.
func (e LogEntry) Damage() float64 {
	return e.DamageNormal + e.DamageCrit + e.DamageTick + e.DamageSpecial
}

// RunResult is the outcome of one simulated fight.
type RunResult struct {
	DPS         float64                        `json:"dps"`
	TotalDamage float64                        `json:"total_damage"`
	Duration    time.Duration                  `json:"duration"`
	Seed        *int64                         `json:"seed,omitempty"`
	Abilities   map[abilities.ID]*AbilityStats `json:"abilities"`
	Casts       map[abilities.ID]int           `json:"casts"`
	Log         []LogEntry                     `json:"log,omitempty"`
	LogDropped  int                            `json:"log_dropped,omitempty"`
}

func newRunResult(d time.Duration) *RunResult {
	return &RunResult{
		Duration:  d,
		Abilities: make(map[abilities.ID]*AbilityStats),
		Casts:     make(map[abilities.ID]int),
	}
}

func (r *RunResult) stats(id abilities.ID) *AbilityStats {
	s, ok := r.Abilities[id]
	if !ok {
		s = newAbilityStats()
		r.Abilities[id] = s
	}
	return s
}

// AbilityDamage returns the damage map keyed by source.
func (r *RunResult) AbilityDamage() map[abilities.ID]float64 {
	out := make(map[abilities.ID]float64, len(r.Abilities))
	for id, s := range r.Abilities {
		out[id] = s.Damage
	}
	return out
}

func (r *RunResult) finish() {
	r.DPS = r.TotalDamage / r.Duration.Seconds()
	for _, s := range r.Abilities {
		if s.MinDamage == math.MaxFloat64 {
			s.MinDamage = 0
		}
	}
}
