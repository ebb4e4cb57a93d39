package character

import (
	"testing"
	"time"
)

func newTestCharacter() *Character {
	return NewCharacter(BaseFor(Tauren), Stats{AttackPower: 1000, CritPct: 30}, 3000)
}

func TestNewCharacter(t *testing.T) {
	c := newTestCharacter()
	if c.Energy != MaxEnergy {
		t.Errorf("starting energy = %v, want %v", c.Energy, MaxEnergy)
	}
	if c.ComboPoints != 0 {
		t.Errorf("starting combo points = %d, want 0", c.ComboPoints)
	}
	if c.CurrentTime != StartTime {
		t.Errorf("starting time = %v, want %v", c.CurrentTime, StartTime)
	}
	if c.AuraActive("rip") {
		t.Error("no aura should be active at start")
	}
	if !c.IsGCDReady() {
		t.Error("GCD should be ready at start")
	}
}

func TestEnergyBounds(t *testing.T) {
	c := newTestCharacter()

	tests := []struct {
		name   string
		op     func() float64
		energy float64
		ret    float64
	}{
		{"gain at cap", func() float64 { return c.GainEnergy(20) }, 100, 0},
		{"spend", func() float64 { c.SpendEnergy(45); return 0 }, 55, 0},
		{"gain partial", func() float64 { return c.GainEnergy(60) }, 100, 45},
		{"set over cap", func() float64 { c.SetEnergy(140); return 0 }, 100, 0},
		{"set negative", func() float64 { c.SetEnergy(-5); return 0 }, 0, 0},
	}
	for _, tt := range tests {
		got := tt.op()
		if got != tt.ret {
			t.Errorf("%s: returned %v, want %v", tt.name, got, tt.ret)
		}
		if c.Energy != tt.energy {
			t.Errorf("%s: energy = %v, want %v", tt.name, c.Energy, tt.energy)
		}
	}
}

func TestSpendEnergy_Insufficient(t *testing.T) {
	c := newTestCharacter()
	c.SetEnergy(30)
	if c.SpendEnergy(35) {
		t.Fatal("spent more energy than available")
	}
	if c.Energy != 30 {
		t.Fatalf("failed spend changed energy to %v", c.Energy)
	}
}

func TestComboPointBounds(t *testing.T) {
	c := newTestCharacter()
	c.AddComboPoints(4)
	c.AddComboPoints(2)
	if c.ComboPoints != MaxComboPoints {
		t.Fatalf("combo points = %d, want %d", c.ComboPoints, MaxComboPoints)
	}
	c.AddComboPoints(-9)
	if c.ComboPoints != 0 {
		t.Fatalf("combo points = %d, want 0", c.ComboPoints)
	}
}

func TestManaAndGCD(t *testing.T) {
	c := newTestCharacter()
	c.AdvanceTo(0)
	c.SpendMana(2900)
	if c.HasMana(300) {
		t.Fatal("should not afford a shift with 100 mana")
	}
	c.SpendMana(300)
	if c.Mana != 0 {
		t.Fatalf("mana = %v, want 0", c.Mana)
	}
	c.TriggerGCD(time.Second)
	if c.IsGCDReady() {
		t.Fatal("GCD ready right after trigger")
	}
	c.AdvanceTo(time.Second)
	if !c.IsGCDReady() {
		t.Fatal("GCD not ready after 1s")
	}
}

func TestParseRace(t *testing.T) {
	tests := []struct {
		in   string
		want Race
	}{
		{"Tauren", Tauren},
		{"NightElf", NightElf},
		{"Night Elf", NightElf},
		{"", Tauren},
		{"Gnome", Tauren},
	}
	for _, tt := range tests {
		if got := ParseRace(tt.in); got != tt.want {
			t.Errorf("ParseRace(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if BaseFor("unknown").BaseAP != 295 {
		t.Error("unknown race should fall back to Tauren base")
	}
}
