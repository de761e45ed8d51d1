package types

// ElementType is a battle type such as Fire or Water.
type ElementType uint8

const (
	ElementNormal ElementType = iota
	ElementFighting
	ElementFlying
	ElementPoison
	ElementGround
	ElementRock
	ElementBug
	ElementGhost
	ElementSteel
	ElementFire
	ElementWater
	ElementGrass
	ElementElectric
	ElementPsychic
	ElementIce
	ElementDragon
	ElementDark
	ElementFairy

	// ElementStellar only appears as a tera type.
	ElementStellar ElementType = 99
	ElementNone    ElementType = 0xFF
)

var elementNames = [...]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark", "Fairy",
}

// ElementTypeFromCode maps a raw type byte.
func ElementTypeFromCode(code uint8) ElementType {
	switch {
	case int(code) < len(elementNames):
		return ElementType(code)
	case ElementType(code) == ElementStellar:
		return ElementStellar
	default:
		return ElementNone
	}
}

func (e ElementType) String() string {
	switch {
	case int(e) < len(elementNames):
		return elementNames[e]
	case e == ElementStellar:
		return "Stellar"
	default:
		return "None"
	}
}
