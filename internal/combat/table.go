package combat

// Outcome is the single mutually exclusive result of an attack table roll.
type Outcome int

const (
	Hit Outcome = iota
	Miss
	Dodge
	Parry
	Glance
	Block
	Crit
)

var outcomeNames = [...]string{
	Hit:    "HIT",
	Miss:   "MISS",
	Dodge:  "DODGE",
	Parry:  "PARRY",
	Glance: "GLANCE",
	Block:  "BLOCK",
	Crit:   "CRIT",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "UNKNOWN"
	}
	return outcomeNames[o]
}

// Avoided reports whether the attack dealt no damage at all.
func (o Outcome) Avoided() bool {
	return o == Miss || o == Dodge || o == Parry
}

// Table holds percentage chances (0-100) for each outcome.
type Table struct {
	Miss   float64
	Dodge  float64
	Parry  float64
	Glance float64
	Block  float64
	Crit   float64
}

// Roller supplies uniform draws in [0, 1).
type Roller interface {
	Uniform() float64
}

// Resolve draws once and walks the cumulative thresholds in the order
// miss, dodge, parry, glance, block, crit. Anything left over is a hit.
func Resolve(r Roller, t Table) Outcome {
	roll := r.Uniform() * 100
	steps := [...]struct {
		chance  float64
		outcome Outcome
	}{
		{t.Miss, Miss},
		{t.Dodge, Dodge},
		{t.Parry, Parry},
		{t.Glance, Glance},
		{t.Block, Block},
		{t.Crit, Crit},
	}
	limit := 0.0
	for _, step := range steps {
		if step.chance <= 0 {
			continue
		}
		limit += step.chance
		if roll < limit {
			return step.outcome
		}
	}
	return Hit
}
