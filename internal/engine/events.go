package engine

import (
	"time"

	"turtle-feral-sim/internal/abilities"
)

type eventKind int

const (
	eventDotTick eventKind = iota
	eventTigersFuryEnergy
)

// dotTick is the payload of one scheduled periodic damage tick.
type dotTick struct {
	aura   string
	source abilities.ID
	damage float64
	bleed  bool
}

type scheduledEvent struct {
	executeAt time.Duration
	kind      eventKind
	tick      dotTick
	cancelled bool
}

func (e *scheduledEvent) Cancel() {
	if e == nil {
		return
	}
	e.cancelled = true
}

// eventQueue keeps events sorted by time; equal times keep insertion order.
type eventQueue []*scheduledEvent

func (eq *eventQueue) add(ev *scheduledEvent) {
	if ev == nil {
		return
	}
	inserted := false
	for i, existing := range *eq {
		if ev.executeAt < existing.executeAt {
			*eq = append(*eq, nil)
			copy((*eq)[i+1:], (*eq)[i:])
			(*eq)[i] = ev
			inserted = true
			break
		}
	}
	if !inserted {
		*eq = append(*eq, ev)
	}
}

func (eq *eventQueue) cleanFront() {
	for len(*eq) > 0 {
		ev := (*eq)[0]
		if ev == nil || ev.cancelled {
			*eq = (*eq)[1:]
			continue
		}
		break
	}
}

func (eq *eventQueue) popReady(now time.Duration) *scheduledEvent {
	eq.cleanFront()
	if len(*eq) == 0 {
		return nil
	}
	ev := (*eq)[0]
	if ev.executeAt > now {
		return nil
	}
	*eq = (*eq)[1:]
	return ev
}

// next returns the time of the earliest live event.
func (eq *eventQueue) next() (time.Duration, bool) {
	eq.cleanFront()
	if len(*eq) == 0 {
		return 0, false
	}
	return (*eq)[0].executeAt, true
}

// cancelTicks cancels every pending tick of the named aura.
func (eq *eventQueue) cancelTicks(aura string) int {
	n := 0
	for _, ev := range *eq {
		if ev != nil && !ev.cancelled && ev.kind == eventDotTick && ev.tick.aura == aura {
			ev.Cancel()
			n++
		}
	}
	return n
}
