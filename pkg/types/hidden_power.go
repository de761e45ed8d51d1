package types

// HiddenPower is the elemental type of the move Hidden Power, derived from IV parity.
type HiddenPower uint8

const (
	HiddenPowerFighting HiddenPower = iota
	HiddenPowerFlying
	HiddenPowerPoison
	HiddenPowerGround
	HiddenPowerRock
	HiddenPowerBug
	HiddenPowerGhost
	HiddenPowerSteel
	HiddenPowerFire
	HiddenPowerWater
	HiddenPowerGrass
	HiddenPowerElectric
	HiddenPowerPsychic
	HiddenPowerIce
	HiddenPowerDragon
	HiddenPowerDark
	HiddenPowerNone
)

var hiddenPowerNames = [...]string{
	"Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark",
}

// HiddenPowerFromCode maps an index in [0,15].
func HiddenPowerFromCode(code uint8) HiddenPower {
	if code > uint8(HiddenPowerDark) {
		return HiddenPowerNone
	}
	return HiddenPower(code)
}

func (h HiddenPower) String() string {
	if h > HiddenPowerDark {
		return "None"
	}
	return hiddenPowerNames[h]
}
