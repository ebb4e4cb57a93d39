package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate reports caller bugs that would otherwise produce corrupted
// output. Absent fields are not errors; Normalize handles those.
func (c SimulationConfig) Validate() error {
	var problems []string

	if c.Simulation.DurationSeconds < 0 || math.IsNaN(c.Simulation.DurationSeconds) {
		problems = append(problems, fmt.Sprintf("simulation.duration_seconds must not be negative (got %v)", c.Simulation.DurationSeconds))
	}
	if math.IsInf(c.Simulation.DurationSeconds, 0) {
		problems = append(problems, "simulation.duration_seconds must be finite")
	}
	if lvl := c.Target.Level; lvl != 0 && lvl < 48 {
		problems = append(problems, fmt.Sprintf("target.level %d is below the supported armor range (48+)", lvl))
	}
	if c.Target.Armor < 0 {
		problems = append(problems, fmt.Sprintf("target.armor must not be negative (got %v)", c.Target.Armor))
	}
	switch strings.ToLower(strings.TrimSpace(c.Target.Debuffs.MajorArmor)) {
	case "", "none", "sunder", "iea":
	default:
		problems = append(problems, fmt.Sprintf("target.debuffs.major_armor: unknown value %q", c.Target.Debuffs.MajorArmor))
	}
	for _, stat := range []struct {
		name string
		v    float64
	}{
		{"player.attack_power", c.Player.AttackPower},
		{"player.crit_percent", c.Player.CritPercent},
		{"player.hit_percent", c.Player.HitPercent},
		{"player.haste_percent", c.Player.HastePct},
	} {
		if math.IsNaN(stat.v) || math.IsInf(stat.v, 0) {
			problems = append(problems, fmt.Sprintf("%s must be a finite number", stat.name))
		}
	}
	if c.Player.HastePct <= -100 {
		problems = append(problems, fmt.Sprintf("player.haste_percent %v would stop auto attacks", c.Player.HastePct))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
