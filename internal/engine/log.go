package engine

import (
	"math"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/combat"
)

// damageSplit distributes one hit over the log's damage columns.
type damageSplit struct {
	normal  float64
	crit    float64
	tick    float64
	special float64
}

// logExcluded are shown in their own columns rather than ActiveBuffs.
var logExcluded = []string{
	abilities.AuraClearcasting,
	abilities.AuraTigersFury,
	abilities.AuraRake,
	abilities.AuraRip,
	abilities.AuraFaerieFire,
}

func (f *fight) logEvent(event, ability, outcome, info string, dmg damageSplit, energyChange float64) {
	if !f.logEnabled {
		return
	}
	if len(f.result.Log) >= MaxLogEntries {
		f.result.LogDropped++
		return
	}
	c := f.char
	now := c.CurrentTime
	haste := f.hasteMod()

	ffRemaining := c.AuraRemaining(abilities.AuraFaerieFire).Seconds()
	if f.cfg.Target.Debuffs.FaerieFire {
		ffRemaining = faerieFireDuration.Seconds()
	}
	var buffs map[string]float64
	for _, a := range c.Auras.ActiveAt(now, logExcluded...) {
		if buffs == nil {
			buffs = make(map[string]float64)
		}
		buffs[a.Name] = math.Round(a.Remaining.Seconds()*10) / 10
	}

	f.result.Log = append(f.result.Log, LogEntry{
		Time:          math.Max(0, now.Seconds()),
		Event:         event,
		Ability:       ability,
		Outcome:       outcome,
		DamageNormal:  dmg.normal,
		DamageCrit:    dmg.crit,
		DamageTick:    dmg.tick,
		DamageSpecial: dmg.special,
		RakeRemaining: c.AuraRemaining(abilities.AuraRake).Seconds(),
		RipRemaining:  c.AuraRemaining(abilities.AuraRip).Seconds(),
		FFRemaining:   ffRemaining,
		OoCRemaining:  c.AuraRemaining(abilities.AuraClearcasting).Seconds(),
		TFRemaining:   c.AuraRemaining(abilities.AuraTigersFury).Seconds(),
		ActiveBuffs:   buffs,
		EnergyChange:  math.Round(energyChange),
		ComboPoints:   c.ComboPoints,
		AttackPower:   math.Round(f.attackPower()),
		HastePct:      (haste - 1) * 100,
		WeaponSpeed:   c.Base.WeaponSpeed.Seconds() / haste,
		ArmorPen:      c.Stats.ArmorPen + float64(c.Stacks.Get(abilities.StackSwarmguard))*combat.SwarmguardPerStack,
		Mana:          math.Floor(c.Mana),
		Energy:        math.Round(c.Energy),
		Info:          info,
	})
}

// record floors dmg and adds it to the totals.
func (f *fight) record(id abilities.ID, dmg float64) (float64, *AbilityStats) {
	dmg = math.Floor(dmg)
	s := f.result.stats(id)
	s.recordDamage(dmg)
	f.result.TotalDamage += dmg
	return dmg, s
}

// dealAttack records the damage of a resolved white or yellow attack whose
// outcome was already counted.
func (f *fight) dealAttack(id abilities.ID, raw float64, out combat.Outcome, energyChange float64) {
	dmg, _ := f.record(id, raw)
	split := damageSplit{normal: dmg}
	if out == combat.Crit {
		split = damageSplit{normal: dmg / 2, crit: dmg / 2}
	}
	f.logEvent(EventDamage, string(id), out.String(), "Physical", split, energyChange)
}

func (f *fight) dealTick(id abilities.ID, raw, energyChange float64) {
	dmg, s := f.record(id, raw)
	s.Ticks++
	f.logEvent(EventTick, string(id), "Tick", "Periodic", damageSplit{tick: dmg}, energyChange)
}

// dealSpecial records proc damage that ignores the attack table.
func (f *fight) dealSpecial(id abilities.ID, raw float64, crit bool) {
	dmg, s := f.record(id, raw)
	outcome := "Proc"
	if crit {
		s.recordOutcome(combat.Crit)
		outcome = "Proc Crit"
	} else {
		s.recordOutcome(combat.Hit)
	}
	f.logEvent(EventDamage, string(id), outcome, "Special", damageSplit{special: dmg}, 0)
}
