package abilities

import "math"

// Base energy costs before talents and gear.
const (
	BaseClawCost       = 45.0
	BaseRakeCost       = 40.0
	BaseShredCost      = 60.0
	RipCost            = 30.0
	FerociousBiteCost  = 35.0
	BaseTigersFuryCost = 30.0
)

// CostModifiers are the talent ranks and gear flags that change energy costs.
type CostModifiers struct {
	Ferocity      int
	ImprovedShred int
	Cenarion5p    bool
	Genesis3p     bool
	IdolFerocity  bool
}

// Costs is the energy price list at one instant.
type Costs struct {
	Claw       float64
	Rake       float64
	Shred      float64
	Rip        float64
	Bite       float64
	TigersFury float64
}

// ComputeCosts returns the price list. With clearcasting every cost is zero.
func ComputeCosts(m CostModifiers, clearcasting bool) Costs {
	if clearcasting {
		return Costs{}
	}
	c := Costs{
		Claw:       BaseClawCost - float64(m.Ferocity),
		Rake:       BaseRakeCost - float64(m.Ferocity),
		Shred:      BaseShredCost - 6*float64(m.ImprovedShred),
		Rip:        RipCost,
		Bite:       FerociousBiteCost,
		TigersFury: BaseTigersFuryCost,
	}
	if m.Cenarion5p {
		c.TigersFury -= 5
	}
	if m.Genesis3p {
		c.Claw -= 3
		c.Rake -= 3
		c.Shred -= 3
	}
	if m.IdolFerocity {
		c.Claw -= 3
		c.Rake -= 3
	}
	c.Claw = math.Max(0, c.Claw)
	c.Rake = math.Max(0, c.Rake)
	c.Shred = math.Max(0, c.Shred)
	c.TigersFury = math.Max(0, c.TigersFury)
	return c
}

// Of returns the cost of id, zero for abilities without an energy price.
func (c Costs) Of(id ID) float64 {
	switch id {
	case Claw:
		return c.Claw
	case Rake:
		return c.Rake
	case Shred:
		return c.Shred
	case Rip:
		return c.Rip
	case FerociousBite:
		return c.Bite
	case TigersFury:
		return c.TigersFury
	}
	return 0
}
