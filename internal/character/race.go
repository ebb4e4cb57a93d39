package character

import (
	"strings"
	"time"
)

// Race selects the base stat block of the cat form.
type Race string

const (
	Tauren   Race = "Tauren"
	NightElf Race = "NightElf"
)

// RaceBase holds the race dependent constants the formulas use.
type RaceBase struct {
	BaseAP      float64
	BaseCrit    float64
	MinDamage   float64
	MaxDamage   float64
	WeaponSpeed time.Duration
}

var raceTable = map[Race]RaceBase{
	Tauren:   {BaseAP: 295, BaseCrit: 3.65, MinDamage: 72, MaxDamage: 97, WeaponSpeed: time.Second},
	NightElf: {BaseAP: 295, BaseCrit: 3.65, MinDamage: 72, MaxDamage: 97, WeaponSpeed: time.Second},
}

// ParseRace maps a config string to a known race, falling back to Tauren.
func ParseRace(name string) Race {
	switch strings.ToLower(strings.ReplaceAll(name, " ", "")) {
	case "nightelf", "nelf":
		return NightElf
	default:
		return Tauren
	}
}

// BaseFor returns the base stats for r (Tauren when unknown).
func BaseFor(r Race) RaceBase {
	if base, ok := raceTable[r]; ok {
		return base
	}
	return raceTable[Tauren]
}
