package abilities

// Aura, stack and cooldown names shared by the engine, the rotation and the
// combat log.
const (
	AuraRake            = "Rake"
	AuraRip             = "Rip"
	AuraFaerieFire      = "Faerie Fire"
	AuraClearcasting    = "Clearcasting"
	AuraTigersFury      = "Tiger's Fury"
	AuraTigersFurySpeed = "Blood Frenzy"
	AuraBerserk         = "Berserk"
	AuraPotion          = "Potion of Quickness"
	AuraSlayer          = "Slayer's Crest"
	AuraSpider          = "Kiss of the Spider"
	AuraEarthstrike     = "Earthstrike"
	AuraJomGabbar       = "Jom Gabbar"
	AuraEmberstone      = "Emberstone"
	AuraSwarmguard      = "Swarmguard"
	AuraGenesis         = "Genesis"
	AuraTalonAP         = "Talon 3p"
	AuraPrimalFerocity  = "Primal Ferocity"
	AuraCenarionHaste   = "Cenarion Haste"
	AuraLaceration      = "Laceration"
	AuraShieldrender    = "Shieldrender"
	AuraVenoms          = "Venoms"

	StackSwarmguard     = "swarmguard"
	StackVenoms         = "venoms"
	StackCenarion       = "cenarion"
	StackPrimalFerocity = "talon"

	CooldownTrinket1 = "trinket1"
	CooldownTrinket2 = "trinket2"
	CooldownPotion   = "potion"
	CooldownBerserk  = "berserk"
)
