package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// packedField is one slot of the positional share format. A nil ref marks
// a slot kept for compatibility that the engine does not read.
type packedField struct {
	id  string
	ref func(*SimulationConfig) any
}

func unused(*SimulationConfig) any { return nil }

// fieldOrder is the fixed slot order of the share format. New fields are
// only ever appended.
var fieldOrder = []packedField{
	{"simTime", func(c *SimulationConfig) any { return &c.Simulation.DurationSeconds }},
	{"simCount", func(c *SimulationConfig) any { return &c.Simulation.Iterations }},
	{"sim_calc_mode", unused},
	{"statWeightIt", unused},

	{"stat_str", func(c *SimulationConfig) any { return &c.Player.Strength }},
	{"stat_agi", func(c *SimulationConfig) any { return &c.Player.Agility }},
	{"stat_ap", func(c *SimulationConfig) any { return &c.Player.AttackPower }},
	{"stat_hit", func(c *SimulationConfig) any { return &c.Player.HitPercent }},
	{"stat_crit", func(c *SimulationConfig) any { return &c.Player.CritPercent }},
	{"stat_haste", func(c *SimulationConfig) any { return &c.Player.HastePct }},
	{"stat_arp", func(c *SimulationConfig) any { return &c.Player.ArmorPen }},
	{"stat_wep_dmg_min", unused},
	{"stat_wep_dmg_max", unused},
	{"stat_wep_skill", unused},
	{"mana_pool", func(c *SimulationConfig) any { return &c.Player.Mana }},

	{"enemy_level", func(c *SimulationConfig) any { return &c.Target.Level }},
	{"enemy_armor", func(c *SimulationConfig) any { return &c.Target.Armor }},
	{"enemy_can_bleed", func(c *SimulationConfig) any { return &c.Target.CanBleed }},
	{"enemy_can_block", func(c *SimulationConfig) any { return &c.Target.CanBlock }},
	{"enemy_type", func(c *SimulationConfig) any { return &c.Target.Type }},
	{"enemy_boss_select", unused},

	{"debuff_major_armor", func(c *SimulationConfig) any { return &c.Target.Debuffs.MajorArmor }},
	{"debuff_eskhandar", func(c *SimulationConfig) any { return &c.Target.Debuffs.Eskhandar }},
	{"debuff_ff", func(c *SimulationConfig) any { return &c.Target.Debuffs.FaerieFire }},
	{"debuff_cor", func(c *SimulationConfig) any { return &c.Target.Debuffs.CurseOfRecklessness }},

	{"rota_position", func(c *SimulationConfig) any { return &c.Rotation.Position }},
	{"use_rip", func(c *SimulationConfig) any { return &c.Rotation.UseRip }},
	{"rip_cp", func(c *SimulationConfig) any { return &c.Rotation.RipCP }},
	{"use_fb", func(c *SimulationConfig) any { return &c.Rotation.UseBite }},
	{"fb_cp", func(c *SimulationConfig) any { return &c.Rotation.BiteCP }},
	{"fb_energy", func(c *SimulationConfig) any { return &c.Rotation.BiteEnergy }},
	{"use_reshift", func(c *SimulationConfig) any { return &c.Rotation.UseReshift }},
	{"reshift_energy", func(c *SimulationConfig) any { return &c.Rotation.ReshiftEnergy }},
	{"use_tf", func(c *SimulationConfig) any { return &c.Rotation.UseTigersFury }},
	{"reshift_over_tf", func(c *SimulationConfig) any { return &c.Rotation.ReshiftOverTF }},
	{"reshift_over_tf_dur", func(c *SimulationConfig) any { return &c.Rotation.ReshiftOverTFDur }},
	{"use_rake", func(c *SimulationConfig) any { return &c.Rotation.UseRake }},
	{"use_shred", func(c *SimulationConfig) any { return &c.Rotation.UseShred }},
	{"use_claw", func(c *SimulationConfig) any { return &c.Rotation.UseClaw }},
	{"use_ff", func(c *SimulationConfig) any { return &c.Rotation.UseFaerieFire }},
	{"use_berserk", func(c *SimulationConfig) any { return &c.Rotation.UseBerserk }},
	{"shred_ooc_only", func(c *SimulationConfig) any { return &c.Rotation.ShredOOCOnly }},
	{"use_pounce", unused},

	{"set_t05_4p", func(c *SimulationConfig) any { return &c.Gear.T05FourPiece }},
	{"set_cenarion_5p", func(c *SimulationConfig) any { return &c.Gear.Cenarion5p }},
	{"set_cenarion_8p", func(c *SimulationConfig) any { return &c.Gear.Cenarion8p }},
	{"set_genesis_3p", func(c *SimulationConfig) any { return &c.Gear.Genesis3p }},
	{"set_genesis_5p", func(c *SimulationConfig) any { return &c.Gear.Genesis5p }},
	{"set_talon_3p", func(c *SimulationConfig) any { return &c.Gear.Talon3p }},
	{"set_talon_5p", func(c *SimulationConfig) any { return &c.Gear.Talon5p }},

	{"idol_savagery", func(c *SimulationConfig) any { return &c.Gear.IdolSavagery }},
	{"idol_emeral_rot", func(c *SimulationConfig) any { return &c.Gear.IdolEmeraldRot }},
	{"idol_ferocity", func(c *SimulationConfig) any { return &c.Gear.IdolFerocity }},
	{"idol_laceration", func(c *SimulationConfig) any { return &c.Gear.IdolLaceration }},

	{"trinket_swarmguard", func(c *SimulationConfig) any { return &c.Gear.Swarmguard }},
	{"trinket_slayer", func(c *SimulationConfig) any { return &c.Gear.Slayer }},
	{"trinket_spider", func(c *SimulationConfig) any { return &c.Gear.Spider }},
	{"trinket_jomgabbar", func(c *SimulationConfig) any { return &c.Gear.JomGabbar }},
	{"trinket_earthstrike", func(c *SimulationConfig) any { return &c.Gear.Earthstrike }},
	{"trinket_emberstone", func(c *SimulationConfig) any { return &c.Gear.Emberstone }},
	{"trinket_zhm", unused},

	{"trinket_shieldrender", func(c *SimulationConfig) any { return &c.Gear.Shieldrender }},
	{"trinket_venoms", func(c *SimulationConfig) any { return &c.Gear.Venoms }},
	{"trinket_maelstrom", func(c *SimulationConfig) any { return &c.Gear.Maelstrom }},
	{"trinket_hoj", func(c *SimulationConfig) any { return &c.Gear.HandOfJustice }},
	{"trinket_coil", func(c *SimulationConfig) any { return &c.Gear.HeatingCoil }},

	{"consum_elemental", unused},
	{"consum_consecrated", unused},
	{"consum_mongoose", unused},
	{"consum_potion_quickness", func(c *SimulationConfig) any { return &c.Rotation.UsePotion }},
	{"consum_food_str", unused},
	{"consum_food_agi", unused},
	{"consum_food_haste", unused},
	{"consum_scorpok", unused},
	{"consum_roids", unused},
	{"consum_juju_might", unused},
	{"consum_firewater", unused},
	{"consum_juju_power", unused},

	{"buff_motw", unused},
	{"buff_kings", unused},
	{"buff_might", unused},
	{"buff_bs", unused},
	{"buff_lotp", unused},
	{"buff_tsa", unused},
	{"buff_wf_totem", func(c *SimulationConfig) any { return &c.Gear.WindfuryTotem }},
	{"buff_ft_totem", unused},
	{"buff_soe_totem", unused},
	{"buff_goa_totem", unused},

	{"tal_ferocity", func(c *SimulationConfig) any { return &c.Talents.Ferocity }},
	{"tal_feral_aggression", func(c *SimulationConfig) any { return &c.Talents.FeralAggression }},
	{"tal_open_wounds", func(c *SimulationConfig) any { return &c.Talents.OpenWounds }},
	{"tal_sharpened_claws", func(c *SimulationConfig) any { return &c.Talents.SharpenedClaws }},
	{"tal_primal_fury", func(c *SimulationConfig) any { return &c.Talents.PrimalFury }},
	{"tal_blood_frenzy", func(c *SimulationConfig) any { return &c.Talents.BloodFrenzy }},
	{"tal_imp_shred", func(c *SimulationConfig) any { return &c.Talents.ImprovedShred }},
	{"tal_predatory_strikes", func(c *SimulationConfig) any { return &c.Talents.PredatoryStrikes }},
	{"tal_ancient_brutality", func(c *SimulationConfig) any { return &c.Talents.AncientBrutality }},
	{"tal_berserk", func(c *SimulationConfig) any { return &c.Talents.Berserk }},
	{"tal_hotw", func(c *SimulationConfig) any { return &c.Talents.HeartOfTheWild }},
	{"tal_carnage", func(c *SimulationConfig) any { return &c.Talents.Carnage }},
	{"tal_lotp", func(c *SimulationConfig) any { return &c.Talents.LeaderOfThePack }},
	{"tal_furor", func(c *SimulationConfig) any { return &c.Talents.Furor }},
	{"tal_nat_wep", func(c *SimulationConfig) any { return &c.Talents.NaturalWeapons }},
	{"tal_nat_shapeshifter", func(c *SimulationConfig) any { return &c.Talents.NaturalShapeshift }},
	{"tal_omen", func(c *SimulationConfig) any { return &c.Talents.OmenOfClarity }},

	{"gear_gift_of_ferocity", func(c *SimulationConfig) any { return &c.Gear.GiftOfFerocity }},
}

// FieldIDs returns the slot identifiers in share-format order.
func FieldIDs() []string {
	ids := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		ids[i] = f.id
	}
	return ids
}

// Share is one named configuration plus the equipped item and enchant
// identifiers the gear planner needs to rebuild its view.
type Share struct {
	Name     string           `json:"name"`
	Config   SimulationConfig `json:"config"`
	Gear     map[string]any   `json:"gear,omitempty"`
	Enchants map[string]any   `json:"enchants,omitempty"`
}

type packedShare struct {
	Name string             `json:"n"`
	Data [3]json.RawMessage `json:"d"`
}

// Pack flattens cfg into its positional value list.
func Pack(cfg SimulationConfig) []any {
	values := make([]any, len(fieldOrder))
	for i, f := range fieldOrder {
		switch p := f.ref(&cfg).(type) {
		case *float64:
			values[i] = *p
		case *int:
			values[i] = *p
		case *bool:
			if *p {
				values[i] = 1
			} else {
				values[i] = 0
			}
		case *string:
			values[i] = *p
		}
	}
	return values
}

// Unpack restores values onto Defaults. Shorter lists from older formats
// leave the remaining fields at their defaults and mismatched types are
// skipped.
func Unpack(values []any) SimulationConfig {
	cfg := Defaults()
	for i, v := range values {
		if i >= len(fieldOrder) || v == nil {
			continue
		}
		assign(fieldOrder[i].ref(&cfg), v)
	}
	return cfg
}

func assign(dst any, v any) {
	switch p := dst.(type) {
	case *float64:
		if f, ok := toFloat(v); ok {
			*p = f
		}
	case *int:
		if f, ok := toFloat(v); ok {
			*p = int(f)
		}
	case *bool:
		switch b := v.(type) {
		case bool:
			*p = b
		default:
			if f, ok := toFloat(v); ok {
				*p = f != 0
			}
		}
	case *string:
		if s, ok := v.(string); ok {
			*p = s
		}
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Export encodes shares into a URL-safe string.
func Export(shares ...Share) (string, error) {
	out := make([]packedShare, 0, len(shares))
	for _, s := range shares {
		var ps packedShare
		ps.Name = s.Name
		parts := []any{Pack(s.Config), nonNil(s.Gear), nonNil(s.Enchants)}
		for i, part := range parts {
			raw, err := json.Marshal(part)
			if err != nil {
				return "", fmt.Errorf("encode share %q: %w", s.Name, err)
			}
			ps.Data[i] = raw
		}
		out = append(out, ps)
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode shares: %w", err)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return "", fmt.Errorf("zstd writer: %w", err)
	}
	defer enc.Close()
	compressed := enc.EncodeAll(payload, nil)
	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// Import decodes a share string (or a full URL carrying ?cfg=).
func Import(s string) ([]Share, error) {
	s = trimShareURL(s)
	compressed, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode share string: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress share string: %w", err)
	}

	var packed []packedShare
	if err := json.Unmarshal(payload, &packed); err != nil {
		return nil, fmt.Errorf("parse share payload: %w", err)
	}
	shares := make([]Share, 0, len(packed))
	for _, ps := range packed {
		var values []any
		if len(ps.Data[0]) > 0 {
			if err := json.Unmarshal(ps.Data[0], &values); err != nil {
				return nil, fmt.Errorf("share %q values: %w", ps.Name, err)
			}
		}
		share := Share{Name: ps.Name, Config: Unpack(values)}
		if err := unmarshalMap(ps.Data[1], &share.Gear); err != nil {
			return nil, fmt.Errorf("share %q gear: %w", ps.Name, err)
		}
		if err := unmarshalMap(ps.Data[2], &share.Enchants); err != nil {
			return nil, fmt.Errorf("share %q enchants: %w", ps.Name, err)
		}
		if share.Name == "" {
			share.Name = "Imported Sim"
		}
		shares = append(shares, share)
	}
	return shares, nil
}

func unmarshalMap(raw json.RawMessage, dst *map[string]any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func trimShareURL(s string) string {
	s = strings.TrimSpace(s)
	for _, marker := range []string{"?cfg=", "?s="} {
		if i := strings.Index(s, marker); i >= 0 {
			s = s[i+len(marker):]
			break
		}
	}
	if i := strings.IndexAny(s, "&#"); i >= 0 {
		s = s[:i]
	}
	return s
}
