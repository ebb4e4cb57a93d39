package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/character"
	"turtle-feral-sim/internal/combat"
	"turtle-feral-sim/internal/config"
	"turtle-feral-sim/internal/rng"
	"turtle-feral-sim/internal/rotation"
)

const (
	energyTickInterval = 2 * time.Second
	firstEnergyTick    = 500 * time.Millisecond
	energyPerTick      = 20.0
	graceWindow        = 10 * time.Second
	gcdDuration        = time.Second
	reshiftGCD         = 1500 * time.Millisecond
	missRefundFraction = 0.8
)

// Random is the randomness a run consumes. *rng.Provider implements it.
type Random interface {
	combat.Roller
	DamageRoll(min, max float64) float64
	Proc(id string, chancePercent float64) bool
}

// Simulator runs single fights for one configuration.
type Simulator struct {
	Config     config.SimulationConfig
	LogEnabled bool
	// NewRandom overrides the provider derived from the configured seed.
	NewRandom func() Random
}

// NewSimulator creates a simulator for cfg.
func NewSimulator(cfg config.SimulationConfig, logEnabled bool) *Simulator {
	return &Simulator{
		Config:     cfg.Clone(),
		LogEnabled: logEnabled,
	}
}

// Run simulates one fight. The configuration is never mutated.
func (s *Simulator) Run(ctx context.Context) (*RunResult, error) {
	if err := checkDuration(s.Config); err != nil {
		return nil, err
	}
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	cfg := s.Config.Normalize()

	var random Random
	switch {
	case s.NewRandom != nil:
		random = s.NewRandom()
	case cfg.Simulation.Seed != nil:
		random = rng.New(*cfg.Simulation.Seed)
	default:
		random = rng.NewUnseeded()
	}

	f := newFight(cfg, random, s.LogEnabled)
	if err := f.run(ctx); err != nil {
		return nil, err
	}
	f.result.finish()
	if cfg.Simulation.Seed != nil {
		seed := *cfg.Simulation.Seed
		f.result.Seed = &seed
	}
	return f.result, nil
}

func checkDuration(cfg config.SimulationConfig) error {
	secs := cfg.Simulation.DurationSeconds
	if secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return fmt.Errorf("%w: %v seconds", ErrInvalidDuration, secs)
	}
	return nil
}

// fight is the mutable state of one run.
type fight struct {
	cfg    config.SimulationConfig
	rot    *rotation.Rotation
	rng    Random
	char   *character.Character
	target combat.Target

	costMods    abilities.CostModifiers
	staticArmor float64

	maxT           time.Duration
	deadline       time.Duration
	nextEnergyTick time.Duration
	events         eventQueue

	// ooc is the clearcasting state captured at the start of each step.
	ooc      bool
	rip      abilities.DotSnapshot
	jomStart time.Duration

	logEnabled bool
	result     *RunResult
}

func newFight(cfg config.SimulationConfig, random Random, logEnabled bool) *fight {
	p := cfg.Player
	base := character.BaseFor(character.ParseRace(p.Race))
	stats := character.Stats{
		Strength:    p.Strength,
		Agility:     p.Agility,
		AttackPower: p.AttackPower,
		CritPct:     p.CritPercent,
		HitPct:      p.HitPercent,
		HastePct:    p.HastePct,
		ArmorPen:    p.ArmorPen,
	}
	d := time.Duration(cfg.Simulation.DurationSeconds * float64(time.Second))

	staticArmor := combat.MajorArmorDebuff(cfg.Target.Debuffs.MajorArmor)
	if cfg.Target.Debuffs.Eskhandar {
		staticArmor += combat.Eskhandar
	}
	if cfg.Target.Debuffs.CurseOfRecklessness {
		staticArmor += combat.CurseOfRecklessness
	}

	return &fight{
		cfg:  cfg,
		rot:  rotation.New(cfg),
		rng:  random,
		char: character.NewCharacter(base, stats, p.Mana),
		target: combat.Target{
			Level:    cfg.Target.Level,
			Front:    cfg.Rotation.Front(),
			CanBlock: cfg.Target.CanBlock,
		},
		costMods: abilities.CostModifiers{
			Ferocity:      cfg.Talents.Ferocity,
			ImprovedShred: cfg.Talents.ImprovedShred,
			Cenarion5p:    cfg.Gear.Cenarion5p,
			Genesis3p:     cfg.Gear.Genesis3p,
			IdolFerocity:  cfg.Gear.IdolFerocity,
		},
		staticArmor:    staticArmor,
		maxT:           d,
		deadline:       d + graceWindow,
		nextEnergyTick: firstEnergyTick,
		logEnabled:     logEnabled,
		result:         newRunResult(d),
	}
}

func (f *fight) now() time.Duration {
	return f.char.CurrentTime
}

func (f *fight) run(ctx context.Context) error {
	c := f.char
	for c.CurrentTime < f.maxT {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := f.maxT
		if at, ok := f.events.next(); ok && at < next {
			next = at
		}
		if f.nextEnergyTick > c.CurrentTime && f.nextEnergyTick < next {
			next = f.nextEnergyTick
		}
		if at := c.Swing.ReadyAt(); at > c.CurrentTime && at < next {
			next = at
		}
		if at := c.GCD.ReadyAt(); at > c.CurrentTime && at < next {
			next = at
		}
		c.AdvanceTo(next)
		if c.CurrentTime >= f.maxT {
			break
		}

		f.step()

		if c.CurrentTime > f.deadline {
			break
		}
	}
	return nil
}

// step processes one instant: due events, the energy tick, the auto attack,
// off-GCD actions and finally the GCD priority list.
func (f *fight) step() {
	c := f.char
	f.runDueEvents()

	if c.CurrentTime >= f.nextEnergyTick {
		amount := energyPerTick
		if c.AuraActive(abilities.AuraBerserk) && f.cfg.Rotation.UseBerserk {
			amount *= 2
		}
		gained := c.GainEnergy(amount)
		f.logEvent(EventCast, "Energy Tick", "Tick", "Regen", damageSplit{}, gained)
		f.nextEnergyTick += energyTickInterval
	}

	f.ooc = c.AuraActive(abilities.AuraClearcasting)

	if c.Swing.Ready(c.CurrentTime) {
		f.swing(false)
		c.Swing.Reset(c.CurrentTime, f.swingInterval())
	}

	f.rot.EachOffGCD(f, f.useOffGCD)

	if c.IsGCDReady() {
		decision := f.rot.Next(f)
		if !decision.None() {
			f.cast(decision.Action)
		}
	}
}

func (f *fight) runDueEvents() {
	for {
		ev := f.events.popReady(f.now())
		if ev == nil {
			return
		}
		switch ev.kind {
		case eventDotTick:
			f.dotTick(ev.tick)
		case eventTigersFuryEnergy:
			exp := f.char.Auras.Expiry(abilities.AuraTigersFury)
			if exp > 0 && exp >= f.now() {
				gained := f.char.GainEnergy(10)
				f.logEvent(EventBuff, string(abilities.TigersFury), "Proc", "Energy", damageSplit{}, gained)
			}
		}
	}
}

func (f *fight) schedule(at time.Duration, kind eventKind, tick dotTick) {
	f.events.add(&scheduledEvent{executeAt: at, kind: kind, tick: tick})
}

func (f *fight) costs() abilities.Costs {
	return abilities.ComputeCosts(f.costMods, f.ooc)
}
