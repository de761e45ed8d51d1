package types

// Nature is a stat-modifying personality trait.
type Nature uint8

// NatureNone is returned for codes outside the 25 known natures.
const NatureNone Nature = 0xFF

var natureNames = [...]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// NatureFromCode maps a raw nature byte.
func NatureFromCode(code uint8) Nature {
	if int(code) >= len(natureNames) {
		return NatureNone
	}
	return Nature(code)
}

func (n Nature) String() string {
	if int(n) >= len(natureNames) {
		return "None"
	}
	return natureNames[n]
}
