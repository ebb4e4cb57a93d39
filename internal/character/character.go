package character

import (
	"time"

	"turtle-feral-sim/internal/effects"
)

const (
	MaxEnergy      = 100.0
	MaxComboPoints = 5
)

// StartTime is where the clock starts so that events scheduled at zero
// are processed on the first step.
const StartTime = -10 * time.Millisecond

// Stats are the final character stats fed to the engine.
type Stats struct {
	Strength    float64
	Agility     float64
	AttackPower float64
	CritPct     float64 // Percentage (e.g., 32.5 for 32.5%)
	HitPct      float64
	HastePct    float64
	ArmorPen    float64
}

// Character is the mutable combat state of one run.
type Character struct {
	Base  RaceBase
	Stats Stats

	Energy      float64
	ComboPoints int
	Mana        float64

	CurrentTime time.Duration
	GCD         effects.Timer
	Swing       effects.Timer

	Auras     effects.Auras
	Stacks    effects.Stacks
	Cooldowns effects.Cooldowns
}

// NewCharacter creates a full-energy character at the start of combat.
func NewCharacter(base RaceBase, stats Stats, mana float64) *Character {
	return &Character{
		Base:        base,
		Stats:       stats,
		Energy:      MaxEnergy,
		Mana:        mana,
		CurrentTime: StartTime,
		Auras:       effects.NewAuras(),
		Stacks:      effects.NewStacks(),
		Cooldowns:   effects.NewCooldowns(),
	}
}

// GainEnergy adds energy up to the cap and returns the amount actually gained.
func (c *Character) GainEnergy(amount float64) float64 {
	before := c.Energy
	c.Energy += amount
	c.clampEnergy()
	return c.Energy - before
}

// SpendEnergy deducts cost if affordable.
func (c *Character) SpendEnergy(cost float64) bool {
	if cost > c.Energy {
		return false
	}
	c.Energy -= cost
	c.clampEnergy()
	return true
}

// SetEnergy overwrites the pool (powershift, bite dump) within bounds.
func (c *Character) SetEnergy(v float64) {
	c.Energy = v
	c.clampEnergy()
}

func (c *Character) clampEnergy() {
	if c.Energy > MaxEnergy {
		c.Energy = MaxEnergy
	}
	if c.Energy < 0 {
		c.Energy = 0
	}
}

// AddComboPoints adds n points, clamped to [0, MaxComboPoints].
func (c *Character) AddComboPoints(n int) {
	c.ComboPoints += n
	if c.ComboPoints > MaxComboPoints {
		c.ComboPoints = MaxComboPoints
	}
	if c.ComboPoints < 0 {
		c.ComboPoints = 0
	}
}

// ResetComboPoints consumes all combo points.
func (c *Character) ResetComboPoints() {
	c.ComboPoints = 0
}

// HasMana checks if character has enough mana for a shift.
func (c *Character) HasMana(cost float64) bool {
	return c.Mana >= cost
}

// SpendMana deducts mana, flooring at zero.
func (c *Character) SpendMana(cost float64) {
	c.Mana -= cost
	if c.Mana < 0 {
		c.Mana = 0
	}
}

// IsGCDReady checks if GCD is ready
func (c *Character) IsGCDReady() bool {
	return c.GCD.Ready(c.CurrentTime)
}

// TriggerGCD locks primary actions for d.
func (c *Character) TriggerGCD(d time.Duration) {
	c.GCD.Reset(c.CurrentTime, d)
}

// AuraActive reports whether the named aura is up now.
func (c *Character) AuraActive(name string) bool {
	return c.Auras.Active(name, c.CurrentTime)
}

// AuraRemaining returns the time left on the named aura.
func (c *Character) AuraRemaining(name string) time.Duration {
	return c.Auras.Remaining(name, c.CurrentTime)
}

// ApplyAura starts the named aura for d from now.
func (c *Character) ApplyAura(name string, d time.Duration) {
	c.Auras.Apply(name, c.CurrentTime, d)
}

// CooldownReady reports whether the named cooldown has elapsed.
func (c *Character) CooldownReady(name string) bool {
	return c.Cooldowns.Ready(name, c.CurrentTime)
}

// StartCooldown puts the named cooldown on d.
func (c *Character) StartCooldown(name string, d time.Duration) {
	c.Cooldowns.Start(name, c.CurrentTime, d)
}

// AdvanceTo moves simulation time forward to at.
func (c *Character) AdvanceTo(at time.Duration) {
	if at > c.CurrentTime {
		c.CurrentTime = at
	}
}
