package combat

import "math"

// BossLevel is the level at which the raid boss attack table applies.
const BossLevel = 63

const (
	CritMultiplier   = 2.0
	bossCritPenalty  = 4.8
	bossBlockValue   = 38.0
	bossGlanceChance = 40.0
	mobGlanceChance  = 10.0
)

// Target describes the defender side of the attack table.
type Target struct {
	Level    int
	Front    bool
	CanBlock bool
}

// IsBoss reports whether the boss attack table applies.
func (t Target) IsBoss() bool {
	return t.Level >= BossLevel
}

func (t Target) dodge() float64 {
	if t.IsBoss() {
		return 6.5
	}
	return 5.0
}

func (t Target) parry() float64 {
	if !t.Front {
		return 0
	}
	if t.IsBoss() {
		return 14.0
	}
	return 5.0
}

func (t Target) block() float64 {
	if t.Front && t.CanBlock {
		return 5.0
	}
	return 0
}

// WhiteTable builds the single-roll table for auto attacks.
func WhiteTable(hit, crit float64, t Target) Table {
	baseMiss := 5.0
	glance := mobGlanceChance
	if t.IsBoss() {
		baseMiss = 8.6
		glance = bossGlanceChance
	}
	return Table{
		Miss:   math.Max(0, baseMiss-hit),
		Dodge:  t.dodge(),
		Parry:  t.parry(),
		Glance: glance,
		Block:  t.block(),
		Crit:   WhiteCritChance(crit, t),
	}
}

// WhiteCritChance is the auto attack crit chance after the level penalty.
func WhiteCritChance(crit float64, t Target) float64 {
	if t.IsBoss() {
		crit -= bossCritPenalty
	}
	return math.Max(0, crit)
}

// YellowTable builds the avoidance roll for special attacks. Crit is
// resolved separately with YellowCritChance.
func YellowTable(hit float64, naturalWeapons int, t Target) Table {
	baseMiss := 5.0
	if t.IsBoss() {
		baseMiss = 9.0
	}
	return Table{
		Miss:  math.Max(0, baseMiss-hit-float64(naturalWeapons)),
		Dodge: t.dodge(),
		Parry: t.parry(),
		Block: t.block(),
	}
}

// YellowCritChance is the second-roll crit chance for special attacks.
func YellowCritChance(crit, bonus float64, t Target) float64 {
	if t.IsBoss() {
		crit -= bossCritPenalty
	}
	return crit + bonus
}

// GlancePenalty is the fraction of damage lost on a glancing blow.
func GlancePenalty(t Target) float64 {
	if t.IsBoss() {
		return 0.35
	}
	return 0.05
}

// BlockValue is the flat damage absorbed by a block.
func BlockValue(t Target) float64 {
	if t.IsBoss() {
		return bossBlockValue
	}
	return 0
}
