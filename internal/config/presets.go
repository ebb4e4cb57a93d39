package config

import "strings"

// BossPreset is a named enemy profile.
type BossPreset struct {
	Group    string  `json:"group" yaml:"group"`
	Name     string  `json:"name" yaml:"name"`
	Armor    float64 `json:"armor" yaml:"armor"`
	Level    int     `json:"level" yaml:"level"`
	CanBleed bool    `json:"can_bleed" yaml:"can_bleed"`
	CanBlock bool    `json:"can_block" yaml:"can_block"`
	Type     string  `json:"type" yaml:"type"`
}

// Key is the lookup key "Group/Name".
func (b BossPreset) Key() string {
	return b.Group + "/" + b.Name
}

// BossPresets lists known raid targets.
var BossPresets = []BossPreset{
	{Group: "World", Name: "Apprentice Training Dummy", Armor: 100, Level: 60, CanBleed: true, CanBlock: true, Type: "Humanoid"},
	{Group: "World", Name: "Expert Training Dummy", Armor: 3000, Level: 60, CanBleed: true, CanBlock: true, Type: "Humanoid"},
	{Group: "World", Name: "Heroic Training Dummy", Armor: 4211, Level: 63, CanBleed: true, CanBlock: true, Type: "Humanoid"},
	{Group: "Naxxramas", Name: "Most Bosses", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Naxxramas", Name: "Loatheb, Patch, Thaddius", Armor: 4611, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Naxxramas", Name: "Faerlina, Noth", Armor: 3850, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Naxxramas", Name: "Gothik, Kel'Thuzad", Armor: 3402, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "AQ40", Name: "Most Bosses", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "AQ40", Name: "Emperor Vek'lor", Armor: 3833, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "AQ40", Name: "The Prophet Skeram", Armor: 3402, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "BWL", Name: "All Bosses", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Molten Core", Name: "Most Bosses", Armor: 4211, Level: 63, Type: "Humanoid"},
	{Group: "Molten Core", Name: "Sulfuron Harbinger", Armor: 4786, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Molten Core", Name: "Gehennas, Lucifron, Shazzrah", Armor: 3402, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 40", Name: "Most Bosses", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 40", Name: "Krull", Armor: 4752, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 40", Name: "Rook, Rupturan, Mephistroth", Armor: 4611, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 40", Name: "Echo, Sanv Tasdal", Armor: 3850, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 40", Name: "Bishop", Armor: 3402, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Emerald Sanctum", Name: "Solnius", Armor: 4712, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Emerald Sanctum", Name: "Erennius", Armor: 4912, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Zul'Gurub", Name: "Most Bosses", Armor: 3402, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Zul'Gurub", Name: "Bloodlord Mandokir", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Zul'Gurub", Name: "High Priest Thekal", Armor: 3850, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "AQ20", Name: "Most Bosses", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "AQ20", Name: "Moam", Armor: 4113, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "AQ20", Name: "Buru the Gorger", Armor: 3402, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 10", Name: "Lord Blackwald", Armor: 4325, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 10", Name: "Howlfang, Moroes", Armor: 3892, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Kara 10", Name: "Grizikil, Araxxna", Armor: 3044, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Ostarius", Armor: 5980, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Dark Reaver of Karazhan", Armor: 4285, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Azuregos", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Nightmare Dragons", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Lord Kazzak", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Omen", Armor: 4186, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "World Bosses", Name: "Nerubian Overseer", Armor: 3761, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Silithus", Name: "Prince Thunderaan", Armor: 4213, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Silithus", Name: "Lord Skwol", Armor: 4061, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Other", Name: "Onyxia", Armor: 4211, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Other", Name: "UBRS: Gyth", Armor: 4061, Level: 63, CanBleed: true, Type: "Humanoid"},
	{Group: "Other", Name: "UBRS: Lord Valthalak", Armor: 3400, Level: 63, CanBleed: true, Type: "Humanoid"},
}

// FindPreset looks a preset up by "Group/Name" (case-insensitive).
func FindPreset(key string) (BossPreset, bool) {
	for _, p := range BossPresets {
		if strings.EqualFold(p.Key(), key) {
			return p, true
		}
	}
	return BossPreset{}, false
}

// ApplyPreset copies the preset's enemy fields into the target section.
func (c *SimulationConfig) ApplyPreset(p BossPreset) {
	c.Target.Level = p.Level
	c.Target.Armor = p.Armor
	c.Target.CanBleed = p.CanBleed
	c.Target.CanBlock = p.CanBlock
	c.Target.Type = p.Type
}
