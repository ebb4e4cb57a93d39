package rotation

import (
	"time"

	"turtle-feral-sim/internal/abilities"
)

// Context is the live state a rotation reads. The engine implements it.
type Context interface {
	Energy() float64
	ComboPoints() int
	Mana() float64
	Clearcasting() bool
	AuraActive(name string) bool
	AuraRemaining(name string) time.Duration
	CooldownReady(name string) bool
	Cost(id abilities.ID) float64
}

// Condition evaluates to true/false for a given context.
type Condition interface {
	Eval(ctx Context) bool
}

// Always is a condition that holds unconditionally.
var Always Condition = constCondition(true)

// Const lifts a configuration flag into a condition.
func Const(b bool) Condition { return constCondition(b) }

type constCondition bool

func (c constCondition) Eval(Context) bool { return bool(c) }

// All is logical AND.
func All(children ...Condition) Condition { return allCondition{children} }

type allCondition struct {
	children []Condition
}

func (c allCondition) Eval(ctx Context) bool {
	for _, child := range c.children {
		if !child.Eval(ctx) {
			return false
		}
	}
	return true
}

// Any is logical OR.
func Any(children ...Condition) Condition { return anyCondition{children} }

type anyCondition struct {
	children []Condition
}

func (c anyCondition) Eval(ctx Context) bool {
	for _, child := range c.children {
		if child.Eval(ctx) {
			return true
		}
	}
	return false
}

// Not negates a child. A nil child negates to true.
func Not(child Condition) Condition { return notCondition{child} }

type notCondition struct {
	child Condition
}

func (c notCondition) Eval(ctx Context) bool {
	if c.child == nil {
		return true
	}
	return !c.child.Eval(ctx)
}

// AuraActive holds while the named aura has not expired.
func AuraActive(name string) Condition { return auraCondition{name: name} }

// AuraDown holds when the named aura is absent or expired.
func AuraDown(name string) Condition { return Not(AuraActive(name)) }

type auraCondition struct {
	name         string
	maxRemaining *time.Duration
}

func (c auraCondition) Eval(ctx Context) bool {
	if !ctx.AuraActive(c.name) {
		return false
	}
	if c.maxRemaining != nil && ctx.AuraRemaining(c.name) > *c.maxRemaining {
		return false
	}
	return true
}

// AuraRemainingAtMost holds while the aura is active with at most d left.
func AuraRemainingAtMost(name string, d time.Duration) Condition {
	return auraCondition{name: name, maxRemaining: &d}
}

// ComboPointsAtLeast compares the current combo points.
func ComboPointsAtLeast(n int) Condition { return comboCondition(n) }

type comboCondition int

func (c comboCondition) Eval(ctx Context) bool { return ctx.ComboPoints() >= int(c) }

// EnergyBelow holds when energy is strictly under v.
func EnergyBelow(v float64) Condition { return energyBelowCondition(v) }

type energyBelowCondition float64

func (c energyBelowCondition) Eval(ctx Context) bool { return ctx.Energy() < float64(c) }

// CanAfford holds when energy covers the ability's current cost.
func CanAfford(id abilities.ID) Condition { return affordCondition{id: id} }

type affordCondition struct {
	id abilities.ID
}

func (c affordCondition) Eval(ctx Context) bool {
	return ctx.Energy() >= ctx.Cost(c.id)
}

// ManaAtLeast compares the mana pool.
func ManaAtLeast(v float64) Condition { return manaCondition(v) }

type manaCondition float64

func (c manaCondition) Eval(ctx Context) bool { return ctx.Mana() >= float64(c) }

// Clearcasting holds while an Omen of Clarity proc is up.
var Clearcasting Condition = clearcastingCondition{}

type clearcastingCondition struct{}

func (clearcastingCondition) Eval(ctx Context) bool { return ctx.Clearcasting() }

// CooldownReady holds when the named cooldown has elapsed.
func CooldownReady(name string) Condition { return cooldownCondition(name) }

type cooldownCondition string

func (c cooldownCondition) Eval(ctx Context) bool { return ctx.CooldownReady(string(c)) }
