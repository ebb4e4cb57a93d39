package effects

import (
	"testing"
	"time"
)

func TestAuras_InactiveBeforeApplied(t *testing.T) {
	a := NewAuras()
	// The clock starts slightly negative; a zero expiry must not read as active.
	now := -10 * time.Millisecond
	if a.Active("rip", now) {
		t.Fatal("unset aura reported active at negative time")
	}
	a.Clear("rake")
	if a.Active("rake", now) {
		t.Fatal("cleared aura reported active at negative time")
	}
}

func TestAuras_ApplyAndExpire(t *testing.T) {
	a := NewAuras()
	a.Apply("tigers_fury", 2*time.Second, 6*time.Second)

	tests := []struct {
		now       time.Duration
		active    bool
		remaining time.Duration
	}{
		{2 * time.Second, true, 6 * time.Second},
		{7 * time.Second, true, time.Second},
		{8 * time.Second, false, 0},
		{9 * time.Second, false, 0},
	}
	for _, tt := range tests {
		if got := a.Active("tigers_fury", tt.now); got != tt.active {
			t.Errorf("Active(%v) = %v, want %v", tt.now, got, tt.active)
		}
		if got := a.Remaining("tigers_fury", tt.now); got != tt.remaining {
			t.Errorf("Remaining(%v) = %v, want %v", tt.now, got, tt.remaining)
		}
	}
}

func TestAuras_ActiveAt(t *testing.T) {
	a := NewAuras()
	a.Apply("slayer", 0, 20*time.Second)
	a.Apply("berserk", 0, 5*time.Second)
	a.Apply("rip", 0, 10*time.Second)
	a.Apply("gone", 0, time.Second)

	got := a.ActiveAt(2*time.Second, "rip")
	if len(got) != 2 {
		t.Fatalf("expected 2 active auras, got %+v", got)
	}
	if got[0].Name != "berserk" || got[1].Name != "slayer" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Remaining != 18*time.Second {
		t.Fatalf("slayer remaining = %v, want 18s", got[1].Remaining)
	}
}

func TestStacks_Add(t *testing.T) {
	s := NewStacks()
	tests := []struct {
		delta, max, want int
	}{
		{1, 6, 1},
		{4, 6, 5},
		{4, 6, 6},
		{-10, 6, 0},
		{30, 0, 30},
	}
	for i, tt := range tests {
		if got := s.Add("swarmguard", tt.delta, tt.max); got != tt.want {
			t.Errorf("step %d: Add(%d, %d) = %d, want %d", i, tt.delta, tt.max, got, tt.want)
		}
	}
	s.Reset("swarmguard")
	if s.Get("swarmguard") != 0 {
		t.Fatal("reset did not zero the counter")
	}
	s.Set("venom", -3)
	if s.Get("venom") != 0 {
		t.Fatal("negative set should floor at zero")
	}
}

func TestTimer(t *testing.T) {
	var timer Timer
	if !timer.Ready(0) {
		t.Fatal("zero timer should be ready")
	}
	timer.Reset(time.Second, 1500*time.Millisecond)
	if timer.Ready(2 * time.Second) {
		t.Fatal("timer ready too early")
	}
	if got := timer.Remaining(2 * time.Second); got != 500*time.Millisecond {
		t.Fatalf("Remaining = %v, want 500ms", got)
	}
	if !timer.Ready(2500 * time.Millisecond) {
		t.Fatal("timer should be ready at its ready-at time")
	}
}

func TestCooldowns(t *testing.T) {
	c := NewCooldowns()
	if !c.Ready("berserk", 0) {
		t.Fatal("unused cooldown should be ready")
	}
	c.Start("berserk", 10*time.Second, 360*time.Second)
	if c.Ready("berserk", 100*time.Second) {
		t.Fatal("berserk ready during cooldown")
	}
	if got := c.Remaining("berserk", 100*time.Second); got != 270*time.Second {
		t.Fatalf("Remaining = %v, want 270s", got)
	}
	if !c.Ready("berserk", 370*time.Second) {
		t.Fatal("berserk should be ready after its cooldown")
	}
}
