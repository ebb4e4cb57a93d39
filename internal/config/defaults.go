package config

import "strings"

// Fallbacks used when a field is absent or zero.
const (
	DefaultDurationSeconds = 60
	DefaultIterations      = 1000
	DefaultMana            = 3000
	DefaultEnemyLevel      = 63
	DefaultEnemyArmor      = 3731
	DefaultRace            = "Tauren"
)

// Defaults returns the baseline configuration.
func Defaults() SimulationConfig {
	return SimulationConfig{
		Simulation: Simulation{
			DurationSeconds: DefaultDurationSeconds,
			Iterations:      DefaultIterations,
		},
		Player: Player{
			Race: DefaultRace,
			Mana: DefaultMana,
		},
		Target: Target{
			Level:    DefaultEnemyLevel,
			Armor:    DefaultEnemyArmor,
			CanBleed: true,
			Type:     "Humanoid",
			Debuffs:  Debuffs{MajorArmor: "none"},
		},
		Rotation: Rotation{
			Position: "back",
			RipCP:    5,
			BiteCP:   5,
		},
		Talents: Talents{
			OpenWounds:       3,
			SharpenedClaws:   3,
			PrimalFury:       2,
			BloodFrenzy:      2,
			PredatoryStrikes: 3,
			AncientBrutality: 2,
			HeartOfTheWild:   5,
			Carnage:          2,
			LeaderOfThePack:  1,
			Furor:            5,
			NaturalWeapons:   3,
			OmenOfClarity:    1,
		},
	}
}

// Normalize applies the silent fallbacks: a zero duration or enemy level
// takes its default, iterations are floored at one, thresholds are clamped
// into range and enum values are lowercased. Zero armor and mana are legal
// values and kept. Negative durations are left alone so Validate can report
// them.
func (c SimulationConfig) Normalize() SimulationConfig {
	out := c.Clone()
	if out.Simulation.DurationSeconds == 0 {
		out.Simulation.DurationSeconds = DefaultDurationSeconds
	}
	if out.Simulation.Iterations < 1 {
		out.Simulation.Iterations = 1
	}
	if out.Simulation.Workers < 0 {
		out.Simulation.Workers = 0
	}
	if strings.TrimSpace(out.Player.Race) == "" {
		out.Player.Race = DefaultRace
	}
	if out.Target.Level == 0 {
		out.Target.Level = DefaultEnemyLevel
	}
	out.Target.Debuffs.MajorArmor = strings.ToLower(strings.TrimSpace(out.Target.Debuffs.MajorArmor))
	if strings.ToLower(out.Rotation.Position) == "front" {
		out.Rotation.Position = "front"
	} else {
		out.Rotation.Position = "back"
	}
	out.Rotation.RipCP = clampCP(out.Rotation.RipCP)
	out.Rotation.BiteCP = clampCP(out.Rotation.BiteCP)
	return out
}

// Front reports whether the rotation attacks from the front.
func (r Rotation) Front() bool {
	return r.Position == "front"
}

func clampCP(cp int) int {
	switch {
	case cp <= 0:
		return 5
	case cp > 5:
		return 5
	default:
		return cp
	}
}
