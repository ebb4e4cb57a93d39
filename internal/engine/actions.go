package engine

import (
	"fmt"
	"math"
	"time"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/character"
	"turtle-feral-sim/internal/rotation"
)

// Buff durations and cooldowns of the off-GCD actions.
const (
	tigersFuryDuration    = 6 * time.Second
	bloodFrenzyExtension  = 12 * time.Second
	bloodFrenzySpeedDur   = 18 * time.Second
	tigersFuryEnergyEvery = 3 * time.Second
	berserkDuration       = 20 * time.Second
	berserkCooldown       = 360 * time.Second
	potionDuration        = 30 * time.Second
	potionCooldown        = 120 * time.Second
	faerieFireDuration    = 40 * time.Second
	furorEnergyPerRank    = 8.0
	giftOfFerocityEnergy  = 20.0
)

type trinketEffect struct {
	aura     string
	duration time.Duration
	cooldown time.Duration
	slot     string
}

var trinkets = map[abilities.ID]trinketEffect{
	abilities.Slayer:      {abilities.AuraSlayer, 20 * time.Second, 120 * time.Second, abilities.CooldownTrinket1},
	abilities.Spider:      {abilities.AuraSpider, 15 * time.Second, 120 * time.Second, abilities.CooldownTrinket1},
	abilities.Earthstrike: {abilities.AuraEarthstrike, 20 * time.Second, 120 * time.Second, abilities.CooldownTrinket1},
	abilities.JomGabbar:   {abilities.AuraJomGabbar, 20 * time.Second, 120 * time.Second, abilities.CooldownTrinket1},
	abilities.Emberstone:  {abilities.AuraEmberstone, 20 * time.Second, 180 * time.Second, abilities.CooldownTrinket1},
	abilities.Swarmguard:  {abilities.AuraSwarmguard, 30 * time.Second, 180 * time.Second, abilities.CooldownTrinket2},
}

// useOffGCD applies an action that does not touch the global cooldown.
func (f *fight) useOffGCD(id abilities.ID) {
	c := f.char
	switch id {
	case abilities.TigersFury:
		cost := f.costs().TigersFury
		if !c.SpendEnergy(cost) {
			return
		}
		f.result.Casts[id]++
		dur := tigersFuryDuration
		if f.cfg.Talents.BloodFrenzy > 0 {
			dur += bloodFrenzyExtension
			c.ApplyAura(abilities.AuraTigersFurySpeed, bloodFrenzySpeedDur)
		}
		c.ApplyAura(abilities.AuraTigersFury, dur)
		for at := tigersFuryEnergyEvery; at <= dur; at += tigersFuryEnergyEvery {
			f.schedule(c.CurrentTime+at, eventTigersFuryEnergy, dotTick{})
		}
		f.logEvent(EventBuff, string(id), "Buff", "Buff", damageSplit{}, -cost)
	case abilities.Berserk:
		f.result.Casts[id]++
		c.ApplyAura(abilities.AuraBerserk, berserkDuration)
		c.StartCooldown(abilities.CooldownBerserk, berserkCooldown)
		f.logEvent(EventBuff, string(id), "Buff", "+100% Regen", damageSplit{}, 0)
	case abilities.Potion:
		f.result.Casts[id]++
		c.ApplyAura(abilities.AuraPotion, potionDuration)
		c.StartCooldown(abilities.CooldownPotion, potionCooldown)
		f.logEvent(EventBuff, string(id), "Buff", "Quickness", damageSplit{}, 0)
	default:
		tr, ok := trinkets[id]
		if !ok {
			return
		}
		f.result.Casts[id]++
		c.ApplyAura(tr.aura, tr.duration)
		c.StartCooldown(tr.slot, tr.cooldown)
		switch id {
		case abilities.JomGabbar:
			f.jomStart = c.CurrentTime
		case abilities.Swarmguard:
			c.Stacks.Reset(abilities.StackSwarmguard)
		}
		f.logEvent(EventBuff, string(id), "Buff", "Activated", damageSplit{}, 0)
	}
}

// reshift trades mana for an energy reset and drops Tiger's Fury.
func (f *fight) reshift() {
	c := f.char
	if !c.HasMana(rotation.ReshiftManaCost) {
		return
	}
	c.SpendMana(rotation.ReshiftManaCost)
	c.Auras.Clear(abilities.AuraTigersFury)
	c.Auras.Clear(abilities.AuraTigersFurySpeed)

	target := furorEnergyPerRank * float64(f.cfg.Talents.Furor)
	if f.cfg.Gear.GiftOfFerocity {
		target += giftOfFerocityEnergy
	}
	target = math.Min(character.MaxEnergy, target)
	change := target - c.Energy
	c.SetEnergy(target)
	c.TriggerGCD(reshiftGCD)
	f.result.Casts[abilities.Reshift]++
	f.logEvent(EventCast, string(abilities.Reshift), "Cast", fmt.Sprintf("Energy -> %.0f", c.Energy), damageSplit{}, change)
}

func (f *fight) faerieFire() {
	c := f.char
	c.ApplyAura(abilities.AuraFaerieFire, faerieFireDuration)
	c.TriggerGCD(gcdDuration)
	f.result.Casts[abilities.FaerieFire]++
	f.logEvent(EventCast, string(abilities.FaerieFire), "Debuff", "-505 Armor", damageSplit{}, 0)
}
