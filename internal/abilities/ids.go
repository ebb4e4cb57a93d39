package abilities

// ID names an ability, proc or buff as it appears in results and the log.
type ID string

const (
	AutoAttack    ID = "Auto Attack"
	ExtraAttack   ID = "Extra Attack"
	Claw          ID = "Claw"
	Shred         ID = "Shred"
	Rake          ID = "Rake"
	Rip           ID = "Rip"
	FerociousBite ID = "Ferocious Bite"
	TigersFury    ID = "Tiger's Fury"
	Berserk       ID = "Berserk"
	Reshift       ID = "Reshift"
	FaerieFire    ID = "Faerie Fire"
	Potion        ID = "Potion of Quickness"

	Slayer      ID = "Slayer's Crest"
	Spider      ID = "Kiss of the Spider"
	Earthstrike ID = "Earthstrike"
	JomGabbar   ID = "Jom Gabbar"
	Emberstone  ID = "Emberstone"
	Swarmguard  ID = "Badge of the Swarmguard"

	Maelstrom   ID = "Maelstrom"
	HeatingCoil ID = "Heating Coil"
	Venoms      ID = "Venoms"
	EmeraldRot  ID = "Emerald Rot"
)

// IsBuilder reports whether a landed hit awards a combo point.
func (id ID) IsBuilder() bool {
	switch id {
	case Claw, Shred, Rake:
		return true
	}
	return false
}

// IsFinisher reports whether the ability consumes combo points.
func (id ID) IsFinisher() bool {
	return id == Rip || id == FerociousBite
}

// IsYellow reports whether the ability goes through the two-roll yellow table.
func (id ID) IsYellow() bool {
	return id.IsBuilder() || id.IsFinisher()
}
