package rng

import "testing"

func TestProvider_Deterministic(t *testing.T) {
	a := New(1337)
	b := New(1337)

	for i := 0; i < 100; i++ {
		x := a.Uniform()
		y := b.Uniform()
		if x != y {
			t.Fatalf("draw %d: got %v and %v from same seed", i, x, y)
		}
	}
}

func TestProvider_UniformRange(t *testing.T) {
	tests := []struct {
		name string
		p    *Provider
	}{
		{"seeded", New(42)},
		{"unseeded", NewUnseeded()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10000; i++ {
				v := tt.p.Uniform()
				if v < 0 || v >= 1 {
					t.Fatalf("uniform out of range [0,1): got %v", v)
				}
			}
		})
	}
}

func TestProvider_DifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)

	differs := false
	for i := 0; i < 20; i++ {
		if a.Uniform() != b.Uniform() {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different sequences")
	}
}

func TestProvider_DamageRoll(t *testing.T) {
	p := New(7)
	for i := 0; i < 1000; i++ {
		v := p.DamageRoll(72, 97)
		if v < 72 || v >= 97 {
			t.Fatalf("damage roll out of range [72,97): got %v", v)
		}
	}
}

func TestProvider_Proc(t *testing.T) {
	p := New(99)

	if p.Proc("never", 0) {
		t.Error("0% proc triggered")
	}
	if p.Proc("negative", -5) {
		t.Error("negative chance proc triggered")
	}
	if p.Draws() != 0 {
		t.Errorf("non-positive chances consumed %d draws, want 0", p.Draws())
	}
	for i := 0; i < 100; i++ {
		if !p.Proc("always", 100) {
			t.Fatal("100% proc failed to trigger")
		}
	}
}

func TestProvider_ProcDistribution(t *testing.T) {
	p := New(12345)
	const trials = 20000
	hits := 0
	for i := 0; i < trials; i++ {
		if p.Proc("omen", 10) {
			hits++
		}
	}
	// 10% of 20k with generous margin.
	if hits < 1700 || hits > 2300 {
		t.Errorf("expected ~2000 procs at 10%%, got %d", hits)
	}
}

func TestProvider_DrawsTracked(t *testing.T) {
	p := New(3)
	p.Uniform()
	p.DamageRoll(1, 2)
	p.Proc("x", 50)
	if p.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", p.Draws())
	}
	if !p.Seeded() || p.Seed() != 3 {
		t.Fatalf("seed bookkeeping wrong: seeded=%v seed=%d", p.Seeded(), p.Seed())
	}
}
