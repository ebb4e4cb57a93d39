package engine

import (
	"math"
	"time"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/combat"
)

// Temporary stat bonuses.
const (
	talonAPBonus        = 100.0
	slayerAPBonus       = 260.0
	earthstrikeAPBonus  = 280.0
	emberstoneAPBonus   = 200.0
	jomGabbarAPStep     = 65.0
	jomGabbarStepPeriod = 2 * time.Second
	primalFerocityMod   = 1.25

	tigersFurySpeedPct = 20.0
	potionHastePct     = 5.0
	cenarionHastePct   = 15.0
	spiderHastePct     = 20.0
)

// attackPower is the current AP including every active temporary bonus.
func (f *fight) attackPower() float64 {
	c := f.char
	ap := c.Stats.AttackPower
	if c.AuraActive(abilities.AuraTalonAP) {
		ap += talonAPBonus
	}
	if c.AuraActive(abilities.AuraSlayer) {
		ap += slayerAPBonus
	}
	if c.AuraActive(abilities.AuraEarthstrike) {
		ap += earthstrikeAPBonus
	}
	if c.AuraActive(abilities.AuraEmberstone) {
		ap += emberstoneAPBonus
	}
	if c.AuraActive(abilities.AuraJomGabbar) {
		steps := math.Floor(float64(c.CurrentTime-f.jomStart) / float64(jomGabbarStepPeriod))
		ap += jomGabbarAPStep + steps*jomGabbarAPStep
	}
	if c.AuraActive(abilities.AuraPrimalFerocity) {
		ap = math.Floor(ap * primalFerocityMod)
	}
	return ap
}

// hasteMod is the swing speed multiplier.
func (f *fight) hasteMod() float64 {
	c := f.char
	pct := 0.0
	if c.Stats.HastePct > 0 {
		pct += c.Stats.HastePct
	}
	if c.AuraActive(abilities.AuraTigersFurySpeed) {
		pct += tigersFurySpeedPct
	}
	if c.AuraActive(abilities.AuraPotion) {
		pct += potionHastePct
	}
	if c.AuraActive(abilities.AuraCenarionHaste) && c.Stacks.Get(abilities.StackCenarion) > 0 {
		pct += cenarionHastePct
	}
	if c.AuraActive(abilities.AuraSpider) {
		pct += spiderHastePct
	}
	return 1 + pct/100
}

func (f *fight) swingInterval() time.Duration {
	return time.Duration(float64(f.char.Base.WeaponSpeed) / f.hasteMod())
}

// armorDebuffs sums the flat armor removed by debuffs right now.
func (f *fight) armorDebuffs() float64 {
	c := f.char
	total := f.staticArmor
	if c.AuraActive(abilities.AuraFaerieFire) || f.cfg.Target.Debuffs.FaerieFire {
		total += combat.FaerieFire
	}
	if c.AuraActive(abilities.AuraSwarmguard) {
		if stacks := c.Stacks.Get(abilities.StackSwarmguard); stacks > 0 {
			total += float64(stacks) * combat.SwarmguardPerStack
		}
	}
	return total
}

// damageReduction is the armor mitigation fraction for physical damage.
func (f *fight) damageReduction() float64 {
	if f.char.AuraActive(abilities.AuraShieldrender) {
		return 0
	}
	return combat.ArmorReduction(f.cfg.Target.Armor, f.char.Stats.ArmorPen, f.armorDebuffs(), f.cfg.Target.Level)
}

func (f *fight) activeBleeds() int {
	n := 0
	if f.char.AuraActive(abilities.AuraRake) {
		n++
	}
	if f.char.AuraActive(abilities.AuraRip) {
		n++
	}
	return n
}

// Energy implements rotation.Context.
func (f *fight) Energy() float64 { return f.char.Energy }

// ComboPoints implements rotation.Context.
func (f *fight) ComboPoints() int { return f.char.ComboPoints }

// Mana implements rotation.Context.
func (f *fight) Mana() float64 { return f.char.Mana }

// Clearcasting implements rotation.Context using the snapshot of this step.
func (f *fight) Clearcasting() bool { return f.ooc }

// AuraActive implements rotation.Context.
func (f *fight) AuraActive(name string) bool { return f.char.AuraActive(name) }

// AuraRemaining implements rotation.Context.
func (f *fight) AuraRemaining(name string) time.Duration { return f.char.AuraRemaining(name) }

// CooldownReady implements rotation.Context.
func (f *fight) CooldownReady(name string) bool { return f.char.CooldownReady(name) }

// Cost implements rotation.Context.
func (f *fight) Cost(id abilities.ID) float64 { return f.costs().Of(id) }
