package effects

import "time"

// Timer tracks a ready-at timestamp for cooldown-style mechanics.
type Timer struct {
	readyAt time.Duration
}

// Ready returns true if the timer is ready at the provided time.
func (t *Timer) Ready(now time.Duration) bool {
	return now >= t.readyAt
}

// Remaining returns the remaining duration until the timer is ready.
func (t *Timer) Remaining(now time.Duration) time.Duration {
	if now >= t.readyAt {
		return 0
	}
	return t.readyAt - now
}

// Reset makes the timer ready again after cooldown.
func (t *Timer) Reset(now time.Duration, cooldown time.Duration) {
	t.readyAt = now + cooldown
}

// ReadyAt returns the current ready timestamp.
func (t *Timer) ReadyAt() time.Duration {
	return t.readyAt
}

// Cooldowns maps an ability or trinket slot to its next-available time.
type Cooldowns map[string]time.Duration

// NewCooldowns returns an empty cooldown set; every entry starts ready.
func NewCooldowns() Cooldowns {
	return make(Cooldowns)
}

// Ready reports whether name may be used at now.
func (c Cooldowns) Ready(name string, now time.Duration) bool {
	return now >= c[name]
}

// Start puts name on cooldown for d.
func (c Cooldowns) Start(name string, now, d time.Duration) {
	c[name] = now + d
}

// Remaining returns the time until name is ready.
func (c Cooldowns) Remaining(name string, now time.Duration) time.Duration {
	if now >= c[name] {
		return 0
	}
	return c[name] - now
}
