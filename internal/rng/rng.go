package rng

import "math/rand/v2"

// Provider is the single source of randomness for one simulation run.
// A seeded provider replays the same sequence call-for-call; an unseeded
// one draws from a freshly seeded PCG source.
type Provider struct {
	seed   int64
	seeded bool
	state  uint32
	src    *rand.Rand
	draws  int64
}

// New creates a deterministic provider from seed.
func New(seed int64) *Provider {
	return &Provider{
		seed:   seed,
		seeded: true,
		state:  uint32(seed),
	}
}

// NewUnseeded creates a provider backed by non-reproducible randomness.
func NewUnseeded() *Provider {
	return &Provider{
		src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Uniform returns a value in [0, 1).
func (p *Provider) Uniform() float64 {
	p.draws++
	if !p.seeded {
		return p.src.Float64()
	}
	return p.next()
}

// next advances the mulberry32 generator.
func (p *Provider) next() float64 {
	p.state += 0x6D2B79F5
	t := p.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// DamageRoll returns a uniform value in [min, max).
func (p *Provider) DamageRoll(min, max float64) float64 {
	return min + p.Uniform()*(max-min)
}

// Proc reports whether an effect with the given percent chance triggers.
// Non-positive chances never trigger and do not consume a draw.
func (p *Provider) Proc(id string, chancePercent float64) bool {
	if chancePercent <= 0 {
		return false
	}
	return p.Uniform()*100 < chancePercent
}

// Seeded reports whether the provider replays a fixed sequence.
func (p *Provider) Seeded() bool {
	return p.seeded
}

// Seed returns the seed the provider was created with (0 when unseeded).
func (p *Provider) Seed() int64 {
	return p.seed
}

// Draws returns the number of uniform draws made so far.
func (p *Provider) Draws() int64 {
	return p.draws
}
