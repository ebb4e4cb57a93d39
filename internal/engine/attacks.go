package engine

import (
	"math"
	"time"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/combat"
)

// Proc chances in percent and their effects.
const (
	omenChance          = 10.0
	omenDuration        = 15 * time.Second
	t05Chance           = 2.0
	t05Energy           = 20.0
	primalFerocityGain  = 3.0
	shieldrenderChance  = 7.0
	shieldrenderDur     = 3 * time.Second
	hojChance           = 2.0
	maelstromChance     = 3.0
	coilChance          = 5.0
	venomsChance        = 20.0
	venomsMaxStacks     = 2
	venomsPerStack      = 120.0
	venomsTicks         = 4
	venomsInterval      = 3 * time.Second
	venomsDuration      = 12 * time.Second
	swarmguardChance    = 80.0
	swarmguardMaxStacks = 6
	windfuryChance      = 20.0

	talon3pChance      = 5.0
	talonBuffDuration  = 10 * time.Second
	primalFerocityCP   = 25
	lacerationDuration = 10 * time.Second
	lacerationRefund   = 15.0
	genesisDuration    = 30 * time.Second
	genesisDamageMod   = 1.15
	genesisCritBonus   = 15.0
	cenarionCharges    = 5
	cenarionDuration   = 999 * time.Second
)

// swing performs one white melee attack. Extra attacks gain bonus AP and
// cannot chain further extra attacks.
func (f *fight) swing(extra bool) {
	c := f.char
	id := abilities.AutoAttack
	ap := f.attackPower()
	if extra {
		id = abilities.ExtraAttack
		ap += abilities.ExtraAttackAP
	}
	roll := f.rng.DamageRoll(c.Base.MinDamage, c.Base.MaxDamage)
	dmg := abilities.NormalDamage(roll, ap, c.Base.BaseAP, c.AuraActive(abilities.AuraTigersFury))
	dmg *= abilities.NaturalWeapons

	out := combat.Resolve(f.rng, combat.WhiteTable(c.Stats.HitPct, c.Stats.CritPct, f.target))
	f.result.stats(id).recordOutcome(out)
	if out.Avoided() {
		f.logEvent(EventCast, string(id), out.String(), "Physical", damageSplit{}, 0)
		return
	}

	switch out {
	case combat.Block:
		dmg = math.Max(0, dmg-combat.BlockValue(f.target))
	case combat.Glance:
		dmg *= 1 - combat.GlancePenalty(f.target)
	case combat.Crit:
		dmg *= combat.CritMultiplier
	}
	dmg *= 1 - f.damageReduction()
	f.dealAttack(id, dmg, out, 0)
	f.onHit(extra)
}

// cast executes the GCD action chosen by the rotation.
func (f *fight) cast(id abilities.ID) {
	switch id {
	case abilities.Reshift:
		f.reshift()
	case abilities.FaerieFire:
		f.faerieFire()
	default:
		f.special(id)
	}
}

// special resolves a yellow attack: avoidance roll, crit roll on a hit or
// block, damage, combo points and procs.
func (f *fight) special(id abilities.ID) {
	c := f.char
	cost := f.costs().Of(id)
	if !c.SpendEnergy(cost) {
		return
	}
	f.result.Casts[id]++
	if f.ooc {
		c.Auras.Clear(abilities.AuraClearcasting)
		f.logEvent(EventBuff, "Omen", "Fade", "Consumed", damageSplit{}, 0)
	}
	c.TriggerGCD(gcdDuration)

	builder := id.IsBuilder()
	genesis := builder && c.AuraActive(abilities.AuraGenesis)

	out := combat.Resolve(f.rng, combat.YellowTable(c.Stats.HitPct, f.cfg.Talents.NaturalWeapons, f.target))
	if out == combat.Hit || out == combat.Block {
		bonus := 0.0
		if genesis {
			bonus = genesisCritBonus
		}
		if f.rng.Proc("crit:"+string(id), combat.YellowCritChance(c.Stats.CritPct, bonus, f.target)) {
			out = combat.Crit
		}
	}
	f.result.stats(id).recordOutcome(out)

	if out.Avoided() {
		refund := c.GainEnergy(cost * missRefundFraction)
		f.logEvent(EventCast, string(id), out.String(), "Refund", damageSplit{}, refund-cost)
		return
	}

	cpGen := 0
	if builder {
		cpGen = 1
		if out == combat.Crit && f.cfg.Talents.PrimalFury > 0 &&
			f.rng.Proc("primal_fury", 50*float64(f.cfg.Talents.PrimalFury)) {
			cpGen++
		}
	}

	ap := f.attackPower()
	roll := f.rng.DamageRoll(c.Base.MinDamage, c.Base.MaxDamage)
	in := abilities.Inputs{
		NormalDamage:    abilities.NormalDamage(roll, ap, c.Base.BaseAP, c.AuraActive(abilities.AuraTigersFury)),
		AttackPower:     ap,
		BaseAP:          c.Base.BaseAP,
		ComboPoints:     c.ComboPoints,
		ActiveBleeds:    f.activeBleeds(),
		OpenWounds:      f.cfg.Talents.OpenWounds,
		ImprovedShred:   f.cfg.Talents.ImprovedShred,
		FeralAggression: f.cfg.Talents.FeralAggression,
	}
	if genesis {
		in.NormalDamage *= genesisDamageMod
		c.Auras.Clear(abilities.AuraGenesis)
		f.logEvent(EventBuff, abilities.AuraGenesis, "Proc", "Consumed", damageSplit{}, 0)
	}

	energyChange := -cost
	ripWasUp := c.AuraActive(abilities.AuraRip)
	switch id {
	case abilities.Shred:
		if c.AuraActive(abilities.AuraLaceration) {
			gained := c.GainEnergy(math.Min(lacerationRefund, 100-c.Energy))
			c.Auras.Clear(abilities.AuraLaceration)
			f.logEvent(EventBuff, abilities.AuraLaceration, "Proc", "Refund", damageSplit{}, gained)
		}
	case abilities.Rake:
		f.applyDot(abilities.RakeDot(ap, f.cfg.Gear.IdolSavagery, c.CurrentTime), abilities.AuraRake, true)
	case abilities.Rip:
		f.rip = abilities.RipDot(ap, c.Base.BaseAP, c.ComboPoints, f.cfg.Talents.OpenWounds, f.cfg.Gear.IdolSavagery, c.CurrentTime)
		f.applyDot(f.rip, abilities.AuraRip, true)
	case abilities.FerociousBite:
		in.ExtraEnergy = c.Energy
		energyChange -= c.Energy
		c.SetEnergy(0)
		if f.cfg.Gear.Cenarion8p && f.rng.Proc("cenarion_8p", 20*float64(c.ComboPoints)) {
			c.ApplyAura(abilities.AuraCenarionHaste, cenarionDuration)
			c.Stacks.Set(abilities.StackCenarion, cenarionCharges)
			f.logEvent(EventBuff, abilities.AuraCenarionHaste, "Proc", "5 Haste Charges", damageSplit{}, 0)
		}
	}

	formula, _ := abilities.Lookup(id)
	dmg := formula(in) * abilities.NaturalWeapons
	switch out {
	case combat.Crit:
		dmg *= combat.CritMultiplier
	case combat.Block:
		dmg = math.Max(0, dmg-combat.BlockValue(f.target))
	}
	if id != abilities.Rip {
		dmg *= 1 - f.damageReduction()
	}
	if dmg > 0 {
		f.dealAttack(id, dmg, out, energyChange)
	} else {
		f.logEvent(EventCast, string(id), out.String(), "Bleed", damageSplit{}, energyChange)
	}

	if builder && f.cfg.Gear.Talon3p && f.rng.Proc("talon_3p", talon3pChance) {
		c.ApplyAura(abilities.AuraTalonAP, talonBuffDuration)
		f.logEvent(EventBuff, abilities.AuraTalonAP, "Proc", "+100 AP", damageSplit{}, 0)
	}

	bonusCP := 0
	if id.IsFinisher() {
		used := c.ComboPoints
		f.finisherProcs(used)
		if id == abilities.FerociousBite && ripWasUp && f.cfg.Talents.Carnage > 0 &&
			f.rng.Proc("carnage", 10*float64(f.cfg.Talents.Carnage)*float64(used)) {
			f.refreshRip()
			bonusCP = 1
		}
		c.ResetComboPoints()
	}
	c.AddComboPoints(cpGen + bonusCP)

	f.onHit(false)
}

// finisherProcs rolls the effects that scale with the combo points spent.
func (f *fight) finisherProcs(cp int) {
	c := f.char
	g := f.cfg.Gear
	if g.IdolEmeraldRot && f.rng.Proc("emerald_rot", 20*float64(cp)) {
		f.dealSpecial(abilities.EmeraldRot, f.rng.DamageRoll(150, 190), false)
	}
	if g.IdolLaceration && f.rng.Proc("laceration", 20*float64(cp)) {
		c.ApplyAura(abilities.AuraLaceration, lacerationDuration)
		f.logEvent(EventBuff, abilities.AuraLaceration, "Proc", "Next Shred Refund", damageSplit{}, 0)
	}
	if g.Talon5p {
		if c.Stacks.Add(abilities.StackPrimalFerocity, cp, 0) >= primalFerocityCP {
			c.Stacks.Reset(abilities.StackPrimalFerocity)
			c.ApplyAura(abilities.AuraPrimalFerocity, talonBuffDuration)
			f.logEvent(EventBuff, abilities.AuraPrimalFerocity, "Proc", "+25% AP", damageSplit{}, 0)
		}
	}
}

// refreshRip restarts Rip with its original snapshot: every tick of the
// original application is scheduled again from now.
func (f *fight) refreshRip() {
	f.events.cancelTicks(abilities.AuraRip)
	f.applyDot(f.rip, abilities.AuraRip, true)
	f.logEvent(EventBuff, "Carnage", "Proc", "Rip refreshed", damageSplit{}, 0)
}

func (f *fight) applyDot(snap abilities.DotSnapshot, aura string, bleed bool) {
	now := f.now()
	f.char.Auras.SetExpiry(aura, now+snap.Duration())
	for i := 1; i <= snap.Ticks; i++ {
		f.schedule(now+time.Duration(i)*snap.Interval, eventDotTick, dotTick{
			aura:   aura,
			source: snap.Name,
			damage: snap.TickDamage,
			bleed:  bleed,
		})
	}
}

// dotTick deals one periodic tick if its aura is still up.
func (f *fight) dotTick(t dotTick) {
	c := f.char
	exp := c.Auras.Expiry(t.aura)
	if exp <= 0 || exp < c.CurrentTime {
		return
	}
	if !t.bleed {
		f.dealTick(t.source, t.damage, 0)
		return
	}
	if !f.cfg.Target.CanBleed {
		return
	}
	gained := 0.0
	if f.cfg.Talents.AncientBrutality > 0 {
		gained = c.GainEnergy(5)
	}
	f.dealTick(t.source, t.damage, gained)

	if f.cfg.Gear.Genesis5p {
		chance := 10.0
		if t.aura == abilities.AuraRake {
			chance = 6.0
		}
		if f.rng.Proc("genesis", chance) {
			c.ApplyAura(abilities.AuraGenesis, genesisDuration)
			f.logEvent(EventBuff, abilities.AuraGenesis, "Proc", "Next Cast Empowered", damageSplit{}, 0)
		}
	}
}

// onHit rolls the procs shared by white and yellow hits, in a fixed order.
func (f *fight) onHit(extra bool) {
	c := f.char
	cfg := f.cfg

	if cfg.Talents.OmenOfClarity > 0 && f.rng.Proc("omen", omenChance) {
		c.ApplyAura(abilities.AuraClearcasting, omenDuration)
		f.logEvent(EventBuff, abilities.AuraClearcasting, "Proc", "Omen of Clarity", damageSplit{}, 0)
	}
	if cfg.Gear.T05FourPiece && f.rng.Proc("t05_4p", t05Chance) {
		gained := c.GainEnergy(t05Energy)
		f.logEvent(EventBuff, "T0.5 4p", "Proc", "Energy", damageSplit{}, gained)
	}
	if c.AuraActive(abilities.AuraPrimalFerocity) {
		gained := c.GainEnergy(primalFerocityGain)
		f.logEvent(EventBuff, abilities.AuraPrimalFerocity, "Proc", "Energy Return", damageSplit{}, gained)
	}
	if c.AuraActive(abilities.AuraCenarionHaste) && c.Stacks.Get(abilities.StackCenarion) > 0 {
		if c.Stacks.Add(abilities.StackCenarion, -1, 0) <= 0 {
			c.Auras.Clear(abilities.AuraCenarionHaste)
		}
	}

	g := cfg.Gear
	if g.Shieldrender && f.rng.Proc("shieldrender", shieldrenderChance) {
		c.ApplyAura(abilities.AuraShieldrender, shieldrenderDur)
		f.logEvent(EventBuff, abilities.AuraShieldrender, "Proc", "Ignore Armor", damageSplit{}, 0)
	}
	if g.HandOfJustice && !extra && f.rng.Proc("hoj", hojChance) {
		f.logEvent(EventBuff, "Hand of Justice", "Proc", "Extra Attack", damageSplit{}, 0)
		f.swing(true)
	}
	if g.Maelstrom && f.rng.Proc("maelstrom", maelstromChance) {
		f.spellProc(abilities.Maelstrom, 200, 301)
	}
	if g.HeatingCoil && f.rng.Proc("coil", coilChance) {
		f.spellProc(abilities.HeatingCoil, 50, 71)
	}
	if g.Venoms && f.rng.Proc("venoms", venomsChance) {
		stacks := c.Stacks.Add(abilities.StackVenoms, 1, venomsMaxStacks)
		c.ApplyAura(abilities.AuraVenoms, venomsDuration)
		f.logEvent(EventBuff, abilities.AuraVenoms, "Proc", "Stack", damageSplit{}, 0)
		f.events.cancelTicks(abilities.AuraVenoms)
		perTick := float64(stacks) * venomsPerStack / venomsTicks
		for i := 1; i <= venomsTicks; i++ {
			f.schedule(f.now()+time.Duration(i)*venomsInterval, eventDotTick, dotTick{
				aura:   abilities.AuraVenoms,
				source: abilities.Venoms,
				damage: perTick,
			})
		}
	}
	if c.AuraActive(abilities.AuraSwarmguard) && c.Stacks.Get(abilities.StackSwarmguard) < swarmguardMaxStacks &&
		f.rng.Proc("swarmguard", swarmguardChance) {
		c.Stacks.Add(abilities.StackSwarmguard, 1, swarmguardMaxStacks)
		f.logEvent(EventBuff, abilities.AuraSwarmguard, "Proc", "Stack", damageSplit{}, 0)
	}
	if g.WindfuryTotem && !extra && f.rng.Proc("windfury", windfuryChance) {
		f.logEvent(EventBuff, "Windfury", "Proc", "Extra Attack", damageSplit{}, 0)
		f.swing(true)
	}
}

// spellProc deals a magic proc and rolls its separate crit, which repeats
// the same damage.
func (f *fight) spellProc(id abilities.ID, min, max float64) {
	dmg := f.rng.DamageRoll(min, max)
	f.dealSpecial(id, dmg, false)
	if f.rng.Proc(string(id)+":crit", combat.WhiteCritChance(f.char.Stats.CritPct, f.target)) {
		f.dealSpecial(id, dmg, true)
	}
}
