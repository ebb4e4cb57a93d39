package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Simulation holds run parameters
type Simulation struct {
	DurationSeconds float64 `yaml:"duration_seconds" json:"duration_seconds"`
	Iterations      int     `yaml:"iterations" json:"iterations"`
	Seed            *int64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	VaryDuration    bool    `yaml:"vary_duration" json:"vary_duration"`
	Workers         int     `yaml:"workers" json:"workers"`
}

// Player holds the final character stat block
type Player struct {
	Race        string  `yaml:"race" json:"race"`
	Strength    float64 `yaml:"strength" json:"strength"`
	Agility     float64 `yaml:"agility" json:"agility"`
	AttackPower float64 `yaml:"attack_power" json:"attack_power"`
	CritPercent float64 `yaml:"crit_percent" json:"crit_percent"`
	HitPercent  float64 `yaml:"hit_percent" json:"hit_percent"`
	HastePct    float64 `yaml:"haste_percent" json:"haste_percent"`
	ArmorPen    float64 `yaml:"armor_penetration" json:"armor_penetration"`
	Mana        float64 `yaml:"mana" json:"mana"`
}

// Debuffs lists armor debuffs applied by other raid members.
type Debuffs struct {
	MajorArmor          string `yaml:"major_armor" json:"major_armor"` // none, sunder, iea
	Eskhandar           bool   `yaml:"eskhandar" json:"eskhandar"`
	CurseOfRecklessness bool   `yaml:"curse_of_recklessness" json:"curse_of_recklessness"`
	FaerieFire          bool   `yaml:"faerie_fire" json:"faerie_fire"`
}

// Target describes the enemy
type Target struct {
	Level    int     `yaml:"level" json:"level"`
	Armor    float64 `yaml:"armor" json:"armor"`
	CanBleed bool    `yaml:"can_bleed" json:"can_bleed"`
	CanBlock bool    `yaml:"can_block" json:"can_block"`
	Type     string  `yaml:"type" json:"type"`
	Debuffs  Debuffs `yaml:"debuffs" json:"debuffs"`
}

// Rotation holds the priority list toggles and thresholds
type Rotation struct {
	Position         string  `yaml:"position" json:"position"` // back, front
	UseRip           bool    `yaml:"use_rip" json:"use_rip"`
	RipCP            int     `yaml:"rip_cp" json:"rip_cp"`
	UseBite          bool    `yaml:"use_bite" json:"use_bite"`
	BiteCP           int     `yaml:"bite_cp" json:"bite_cp"`
	BiteEnergy       float64 `yaml:"bite_energy" json:"bite_energy"`
	UseReshift       bool    `yaml:"use_reshift" json:"use_reshift"`
	ReshiftEnergy    float64 `yaml:"reshift_energy" json:"reshift_energy"`
	ReshiftOverTF    bool    `yaml:"reshift_over_tf" json:"reshift_over_tf"`
	ReshiftOverTFDur float64 `yaml:"reshift_over_tf_seconds" json:"reshift_over_tf_seconds"`
	UseTigersFury    bool    `yaml:"use_tigers_fury" json:"use_tigers_fury"`
	UseRake          bool    `yaml:"use_rake" json:"use_rake"`
	UseShred         bool    `yaml:"use_shred" json:"use_shred"`
	UseClaw          bool    `yaml:"use_claw" json:"use_claw"`
	UseFaerieFire    bool    `yaml:"use_faerie_fire" json:"use_faerie_fire"`
	UseBerserk       bool    `yaml:"use_berserk" json:"use_berserk"`
	ShredOOCOnly     bool    `yaml:"shred_ooc_only" json:"shred_ooc_only"`
	UsePotion        bool    `yaml:"use_potion" json:"use_potion"`
}

// Talents holds talent ranks
type Talents struct {
	Ferocity          int `yaml:"ferocity" json:"ferocity"`
	FeralAggression   int `yaml:"feral_aggression" json:"feral_aggression"`
	OpenWounds        int `yaml:"open_wounds" json:"open_wounds"`
	SharpenedClaws    int `yaml:"sharpened_claws" json:"sharpened_claws"`
	PrimalFury        int `yaml:"primal_fury" json:"primal_fury"`
	BloodFrenzy       int `yaml:"blood_frenzy" json:"blood_frenzy"`
	ImprovedShred     int `yaml:"improved_shred" json:"improved_shred"`
	PredatoryStrikes  int `yaml:"predatory_strikes" json:"predatory_strikes"`
	AncientBrutality  int `yaml:"ancient_brutality" json:"ancient_brutality"`
	Berserk           int `yaml:"berserk" json:"berserk"`
	HeartOfTheWild    int `yaml:"heart_of_the_wild" json:"heart_of_the_wild"`
	Carnage           int `yaml:"carnage" json:"carnage"`
	LeaderOfThePack   int `yaml:"leader_of_the_pack" json:"leader_of_the_pack"`
	Furor             int `yaml:"furor" json:"furor"`
	NaturalWeapons    int `yaml:"natural_weapons" json:"natural_weapons"`
	NaturalShapeshift int `yaml:"natural_shapeshifter" json:"natural_shapeshifter"`
	OmenOfClarity     int `yaml:"omen_of_clarity" json:"omen_of_clarity"`
}

// Gear lists special effects that change engine behaviour.
type Gear struct {
	T05FourPiece   bool `yaml:"t05_4p" json:"t05_4p"`
	Cenarion5p     bool `yaml:"cenarion_5p" json:"cenarion_5p"`
	Cenarion8p     bool `yaml:"cenarion_8p" json:"cenarion_8p"`
	Genesis3p      bool `yaml:"genesis_3p" json:"genesis_3p"`
	Genesis5p      bool `yaml:"genesis_5p" json:"genesis_5p"`
	Talon3p        bool `yaml:"talon_3p" json:"talon_3p"`
	Talon5p        bool `yaml:"talon_5p" json:"talon_5p"`
	IdolSavagery   bool `yaml:"idol_savagery" json:"idol_savagery"`
	IdolEmeraldRot bool `yaml:"idol_emerald_rot" json:"idol_emerald_rot"`
	IdolFerocity   bool `yaml:"idol_ferocity" json:"idol_ferocity"`
	IdolLaceration bool `yaml:"idol_laceration" json:"idol_laceration"`
	GiftOfFerocity bool `yaml:"gift_of_ferocity" json:"gift_of_ferocity"`
	WindfuryTotem  bool `yaml:"windfury_totem" json:"windfury_totem"`
	Swarmguard     bool `yaml:"swarmguard" json:"swarmguard"`
	Slayer         bool `yaml:"slayers_crest" json:"slayers_crest"`
	Spider         bool `yaml:"kiss_of_the_spider" json:"kiss_of_the_spider"`
	JomGabbar      bool `yaml:"jom_gabbar" json:"jom_gabbar"`
	Earthstrike    bool `yaml:"earthstrike" json:"earthstrike"`
	Emberstone     bool `yaml:"emberstone" json:"emberstone"`
	Shieldrender   bool `yaml:"shieldrender" json:"shieldrender"`
	Venoms         bool `yaml:"venoms" json:"venoms"`
	Maelstrom      bool `yaml:"maelstrom" json:"maelstrom"`
	HandOfJustice  bool `yaml:"hand_of_justice" json:"hand_of_justice"`
	HeatingCoil    bool `yaml:"heating_coil" json:"heating_coil"`
}

// SimulationConfig is the self-contained input of one simulation.
type SimulationConfig struct {
	Simulation Simulation `yaml:"simulation" json:"simulation"`
	Player     Player     `yaml:"player" json:"player"`
	Target     Target     `yaml:"target" json:"target"`
	Rotation   Rotation   `yaml:"rotation" json:"rotation"`
	Talents    Talents    `yaml:"talents" json:"talents"`
	Gear       Gear       `yaml:"gear" json:"gear"`
}

// Clone returns a deep copy safe to hand to another goroutine.
func (c SimulationConfig) Clone() SimulationConfig {
	out := c
	if c.Simulation.Seed != nil {
		seed := *c.Simulation.Seed
		out.Simulation.Seed = &seed
	}
	return out
}

// WithSeed returns a copy with the seed set.
func (c SimulationConfig) WithSeed(seed int64) SimulationConfig {
	out := c.Clone()
	out.Simulation.Seed = &seed
	return out
}

var configFiles = []struct {
	name   string
	target func(*SimulationConfig) any
}{
	{"simulation.yaml", func(c *SimulationConfig) any { return &c.Simulation }},
	{"player.yaml", func(c *SimulationConfig) any { return &c.Player }},
	{"target.yaml", func(c *SimulationConfig) any { return &c.Target }},
	{"rotation.yaml", func(c *SimulationConfig) any { return &c.Rotation }},
	{"talents.yaml", func(c *SimulationConfig) any { return &c.Talents }},
	{"gear.yaml", func(c *SimulationConfig) any { return &c.Gear }},
}

// LoadConfig loads all YAML configuration files from configDir on top of
// Defaults. Missing files keep their defaults; malformed ones are errors.
func LoadConfig(configDir string) (*SimulationConfig, error) {
	cfg := Defaults()

	for _, f := range configFiles {
		path := filepath.Join(configDir, f.name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, f.target(&cfg)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads a single combined YAML document with all sections.
func LoadFile(path string) (*SimulationConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes cfg as one YAML file per section into configDir.
func SaveConfig(configDir string, cfg SimulationConfig) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", configDir, err)
	}
	for _, f := range configFiles {
		out, err := yaml.Marshal(f.target(&cfg))
		if err != nil {
			return fmt.Errorf("marshal %s: %w", f.name, err)
		}
		dest := filepath.Join(configDir, f.name)
		if err := os.WriteFile(dest, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}
