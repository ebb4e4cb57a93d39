package combat

import "math"

// Flat armor reductions of the supported debuffs.
const (
	SunderArmor         = 2250.0
	ImprovedExposeArmor = 2550.0
	Eskhandar           = 1200.0
	CurseOfRecklessness = 640.0
	FaerieFire          = 505.0
	SwarmguardPerStack  = 200.0
	MinArmorTargetLevel = 48
)

// ArmorConstant is the level dependent term of the mitigation curve.
func ArmorConstant(level int) float64 {
	return 467.5*float64(level) - 22167.5
}

// EffectiveArmor removes penetration and debuffs from the target armor.
func EffectiveArmor(armor, penetration, debuffs float64) float64 {
	return math.Max(0, armor-penetration-debuffs)
}

// ArmorReduction returns the fraction of physical damage mitigated.
func ArmorReduction(armor, penetration, debuffs float64, level int) float64 {
	eff := EffectiveArmor(armor, penetration, debuffs)
	c := ArmorConstant(level)
	if eff <= 0 || c <= 0 {
		return 0
	}
	return eff / (eff + c)
}

// MajorArmorDebuff maps the exclusive major armor debuff to its value.
func MajorArmorDebuff(name string) float64 {
	switch name {
	case "sunder":
		return SunderArmor
	case "iea":
		return ImprovedExposeArmor
	default:
		return 0
	}
}
