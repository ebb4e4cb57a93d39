package config

import (
	"testing"
)

func TestFieldIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range FieldIDs() {
		if seen[id] {
			t.Errorf("duplicate field id %q", id)
		}
		seen[id] = true
	}
	if FieldIDs()[0] != "simTime" {
		t.Errorf("first slot = %q, want simTime", FieldIDs()[0])
	}
}

func TestPackEncodesBoolsAsNumbers(t *testing.T) {
	cfg := Defaults()
	cfg.Rotation.UseRip = true
	values := Pack(cfg)
	for i, id := range FieldIDs() {
		switch id {
		case "use_rip":
			if values[i] != 1 {
				t.Errorf("use_rip packed as %v, want 1", values[i])
			}
		case "use_fb":
			if values[i] != 0 {
				t.Errorf("use_fb packed as %v, want 0", values[i])
			}
		case "sim_calc_mode":
			if values[i] != nil {
				t.Errorf("unused slot packed as %v", values[i])
			}
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Simulation.DurationSeconds = 180
	cfg.Player.AttackPower = 1450
	cfg.Player.CritPercent = 34.5
	cfg.Target.Debuffs.MajorArmor = "iea"
	cfg.Rotation.UseShred = true
	cfg.Rotation.BiteEnergy = 45
	cfg.Talents.Carnage = 1
	cfg.Gear.Genesis5p = true
	cfg.Gear.GiftOfFerocity = true

	in := Share{
		Name:     "Raid",
		Config:   cfg,
		Gear:     map[string]any{"head": float64(21693)},
		Enchants: map[string]any{"chest": float64(1891)},
	}
	s, err := Export(in)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out, err := Import("https://example.org/sim?cfg=" + s + "&tab=2")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d shares, want 1", len(out))
	}
	got := out[0]
	if got.Name != "Raid" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Config.Simulation != cfg.Simulation {
		t.Errorf("simulation = %+v, want %+v", got.Config.Simulation, cfg.Simulation)
	}
	if got.Config.Player.AttackPower != 1450 || got.Config.Player.CritPercent != 34.5 {
		t.Errorf("player = %+v", got.Config.Player)
	}
	if got.Config.Target != cfg.Target {
		t.Errorf("target = %+v, want %+v", got.Config.Target, cfg.Target)
	}
	if got.Config.Rotation != cfg.Rotation || got.Config.Talents != cfg.Talents || got.Config.Gear != cfg.Gear {
		t.Errorf("rotation/talents/gear differ after round trip")
	}
	if got.Gear["head"] != float64(21693) || got.Enchants["chest"] != float64(1891) {
		t.Errorf("gear maps = %v %v", got.Gear, got.Enchants)
	}
}

func TestUnpackToleratesShortAndMismatched(t *testing.T) {
	values := []any{float64(200), "many", nil, nil, float64(10), true}
	cfg := Unpack(values)
	if cfg.Simulation.DurationSeconds != 200 {
		t.Errorf("duration = %v, want 200", cfg.Simulation.DurationSeconds)
	}
	if cfg.Simulation.Iterations != DefaultIterations {
		t.Errorf("iterations = %d, want default on type mismatch", cfg.Simulation.Iterations)
	}
	if cfg.Player.Strength != 10 {
		t.Errorf("strength = %v, want 10", cfg.Player.Strength)
	}
	if cfg.Player.Agility != 1 {
		t.Errorf("agility = %v, want 1 from bool", cfg.Player.Agility)
	}
	if cfg.Talents != Defaults().Talents {
		t.Errorf("missing slots should keep defaults")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	for _, s := range []string{"!!!", "aGVsbG8"} {
		if _, err := Import(s); err == nil {
			t.Errorf("Import(%q) should fail", s)
		}
	}
}
