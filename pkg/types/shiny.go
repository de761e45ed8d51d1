package types

// Shiny classifies how a shiny creature sparkles.
type Shiny uint8

const (
	ShinyNone Shiny = iota
	ShinyStar
	ShinySquare
)

// ShinyFromXor classifies the XOR of the trainer and personality values:
// 0 is a square shiny, 1-15 a star shiny, anything else is not shiny.
func ShinyFromXor(xor uint16) Shiny {
	switch {
	case xor == 0:
		return ShinySquare
	case xor < 16:
		return ShinyStar
	default:
		return ShinyNone
	}
}

func (s Shiny) String() string {
	switch s {
	case ShinyStar:
		return "Star"
	case ShinySquare:
		return "Square"
	default:
		return "None"
	}
}
