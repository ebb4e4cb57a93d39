package rotation

import (
	"time"

	"turtle-feral-sim/internal/abilities"
	"turtle-feral-sim/internal/config"
)

// ReshiftManaCost is the mana a powershift costs.
const ReshiftManaCost = 300.0

// Rule is one entry of a priority list. When selects the rule; Afford decides
// whether it fires now. A selected but unaffordable rule with Wait set stops
// the list so energy pools for it.
type Rule struct {
	Name   string
	Action abilities.ID
	When   Condition
	Afford Condition
	Wait   bool
}

// Ready reports whether the rule would fire against ctx.
func (r Rule) Ready(ctx Context) bool {
	if r.When != nil && !r.When.Eval(ctx) {
		return false
	}
	return r.Afford == nil || r.Afford.Eval(ctx)
}

// Decision is the outcome of one evaluation of the GCD list.
type Decision struct {
	Action abilities.ID
	Rule   string
	// Wait is set when a rule was selected but could not be afforded.
	Wait bool
}

// None reports whether nothing should be cast.
func (d Decision) None() bool {
	return d.Action == ""
}

// Rotation holds the off-GCD list and the GCD priority list built from a
// configuration.
type Rotation struct {
	OffGCD   []Rule
	Priority []Rule
}

// New builds the rotation for cfg.
func New(cfg config.SimulationConfig) *Rotation {
	r := cfg.Rotation
	g := cfg.Gear
	back := !r.Front()
	canBleed := cfg.Target.CanBleed

	rot := &Rotation{}

	if id, ok := firstTrinket(g); ok {
		rot.OffGCD = append(rot.OffGCD, Rule{
			Name:   "trinket",
			Action: id,
			When:   CooldownReady(abilities.CooldownTrinket1),
		})
	}
	if g.Swarmguard {
		rot.OffGCD = append(rot.OffGCD, Rule{
			Name:   "swarmguard",
			Action: abilities.Swarmguard,
			When:   All(CooldownReady(abilities.CooldownTrinket2), AuraDown(abilities.AuraSwarmguard)),
		})
	}
	if r.UsePotion {
		rot.OffGCD = append(rot.OffGCD, Rule{
			Name:   "potion",
			Action: abilities.Potion,
			When:   CooldownReady(abilities.CooldownPotion),
		})
	}
	if cfg.Talents.Berserk > 0 && r.UseBerserk {
		rot.OffGCD = append(rot.OffGCD, Rule{
			Name:   "berserk",
			Action: abilities.Berserk,
			When:   CooldownReady(abilities.CooldownBerserk),
		})
	}
	if r.UseTigersFury {
		rot.OffGCD = append(rot.OffGCD, Rule{
			Name:   "tigers_fury",
			Action: abilities.TigersFury,
			When:   AuraDown(abilities.AuraTigersFury),
			Afford: CanAfford(abilities.TigersFury),
		})
	}

	ripUsable := All(Const(r.UseRip && canBleed), AuraDown(abilities.AuraRip))
	biteReady := All(Const(r.UseBite), ComboPointsAtLeast(r.BiteCP), Not(ripUsable))
	rot.Priority = append(rot.Priority,
		Rule{
			Name:   "rip",
			Action: abilities.Rip,
			When:   All(ripUsable, ComboPointsAtLeast(r.RipCP)),
			Afford: CanAfford(abilities.Rip),
			Wait:   true,
		},
		// Pool up to the bite floor; above it an unaffordable bite
		// falls through to the builders.
		Rule{
			Name:   "bite_pool",
			When:   All(biteReady, EnergyBelow(r.BiteEnergy)),
			Afford: Const(false),
			Wait:   true,
		},
		Rule{
			Name:   "bite",
			Action: abilities.FerociousBite,
			When:   biteReady,
			Afford: CanAfford(abilities.FerociousBite),
		},
		Rule{
			Name:   "reshift",
			Action: abilities.Reshift,
			When: All(
				Const(r.UseReshift),
				EnergyBelow(r.ReshiftEnergy),
				ManaAtLeast(ReshiftManaCost),
				Any(
					AuraDown(abilities.AuraTigersFury),
					All(Const(r.ReshiftOverTF), AuraRemainingAtMost(abilities.AuraTigersFury, seconds(r.ReshiftOverTFDur))),
				),
			),
		},
	)

	rakeWanted := All(Const(canBleed && r.UseRake), AuraDown(abilities.AuraRake))
	shredOnOmen := Const(back && r.ShredOOCOnly && r.UseShred)
	rot.Priority = append(rot.Priority,
		Rule{
			Name:   "shred_over_rake",
			Action: abilities.Shred,
			When:   All(rakeWanted, shredOnOmen, Clearcasting),
		},
		Rule{
			Name:   "rake",
			Action: abilities.Rake,
			When:   All(rakeWanted, Not(All(shredOnOmen, Clearcasting))),
			Afford: CanAfford(abilities.Rake),
		},
	)

	if back && r.UseShred {
		if r.ShredOOCOnly {
			rot.Priority = append(rot.Priority, Rule{
				Name:   "shred",
				Action: abilities.Shred,
				When:   Clearcasting,
			})
		} else {
			rot.Priority = append(rot.Priority, Rule{
				Name:   "shred",
				Action: abilities.Shred,
				Afford: CanAfford(abilities.Shred),
			})
		}
	}
	if r.UseClaw {
		rot.Priority = append(rot.Priority, Rule{
			Name:   "claw",
			Action: abilities.Claw,
			Afford: Any(Clearcasting, CanAfford(abilities.Claw)),
		})
	}
	if r.UseFaerieFire && !cfg.Target.Debuffs.FaerieFire {
		rot.Priority = append(rot.Priority, Rule{
			Name:   "faerie_fire",
			Action: abilities.FaerieFire,
			When:   AuraDown(abilities.AuraFaerieFire),
		})
	}
	return rot
}

// Next evaluates the GCD priority list.
func (r *Rotation) Next(ctx Context) Decision {
	for _, rule := range r.Priority {
		if rule.When != nil && !rule.When.Eval(ctx) {
			continue
		}
		if rule.Afford == nil || rule.Afford.Eval(ctx) {
			return Decision{Action: rule.Action, Rule: rule.Name}
		}
		if rule.Wait {
			return Decision{Rule: rule.Name, Wait: true}
		}
	}
	return Decision{}
}

// EachOffGCD fires every ready off-GCD rule in order. Each rule is evaluated
// after the previous one fired, so fire must apply its effects to ctx.
func (r *Rotation) EachOffGCD(ctx Context, fire func(abilities.ID)) {
	for _, rule := range r.OffGCD {
		if rule.Ready(ctx) {
			fire(rule.Action)
		}
	}
}

// firstTrinket picks the on-use trinket for the shared slot.
func firstTrinket(g config.Gear) (abilities.ID, bool) {
	switch {
	case g.Slayer:
		return abilities.Slayer, true
	case g.Spider:
		return abilities.Spider, true
	case g.Earthstrike:
		return abilities.Earthstrike, true
	case g.JomGabbar:
		return abilities.JomGabbar, true
	case g.Emberstone:
		return abilities.Emberstone, true
	}
	return "", false
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
