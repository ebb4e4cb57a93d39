package effects

import (
	"sort"
	"time"
)

// Auras maps an aura name to the timestamp it expires at.
// An expiry of zero or less means the aura was never applied or was
// cleared, so it is inactive even while the clock is still negative.
type Auras map[string]time.Duration

// NewAuras returns an empty aura set.
func NewAuras() Auras {
	return make(Auras)
}

// Apply activates the aura for duration starting at now.
func (a Auras) Apply(name string, now, duration time.Duration) {
	a[name] = now + duration
}

// SetExpiry stores an absolute expiry timestamp.
func (a Auras) SetExpiry(name string, at time.Duration) {
	a[name] = at
}

// Expiry returns the stored expiry (0 when never applied).
func (a Auras) Expiry(name string) time.Duration {
	return a[name]
}

// Active reports whether the aura is up at now.
func (a Auras) Active(name string, now time.Duration) bool {
	exp := a[name]
	return exp > 0 && exp > now
}

// Remaining returns the time left on the aura, zero if inactive.
func (a Auras) Remaining(name string, now time.Duration) time.Duration {
	if !a.Active(name, now) {
		return 0
	}
	return a[name] - now
}

// Clear deactivates the aura.
func (a Auras) Clear(name string) {
	a[name] = 0
}

// ActiveAt lists every active aura with its remaining time, sorted by name.
func (a Auras) ActiveAt(now time.Duration, exclude ...string) []AuraRemaining {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}
	var out []AuraRemaining
	for name := range a {
		if _, ok := skip[name]; ok {
			continue
		}
		if a.Active(name, now) {
			out = append(out, AuraRemaining{Name: name, Remaining: a[name] - now})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AuraRemaining pairs an aura name with its remaining duration.
type AuraRemaining struct {
	Name      string        `json:"name"`
	Remaining time.Duration `json:"remaining"`
}

// Stacks maps a counter name to its current count.
type Stacks map[string]int

// NewStacks returns an empty counter set.
func NewStacks() Stacks {
	return make(Stacks)
}

// Get returns the current count.
func (s Stacks) Get(name string) int {
	return s[name]
}

// Set stores count, floored at zero.
func (s Stacks) Set(name string, count int) {
	if count < 0 {
		count = 0
	}
	s[name] = count
}

// Add changes the count by delta and clamps it to [0, max] when max > 0.
// It returns the new count.
func (s Stacks) Add(name string, delta, max int) int {
	n := s[name] + delta
	if n < 0 {
		n = 0
	}
	if max > 0 && n > max {
		n = max
	}
	s[name] = n
	return n
}

// Reset zeroes the counter.
func (s Stacks) Reset(name string) {
	s[name] = 0
}
