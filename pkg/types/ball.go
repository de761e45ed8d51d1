package types

// Ball is the capture ball a creature was caught in.
type Ball uint8

const BallNone Ball = 0

var ballNames = [...]string{
	"None", "Master", "Ultra", "Great", "Poke", "Safari", "Net", "Dive", "Nest", "Repeat",
	"Timer", "Luxury", "Premier", "Dusk", "Heal", "Quick", "Cherish", "Fast", "Level", "Lure",
	"Heavy", "Love", "Friend", "Moon", "Sport", "Dream", "Beast", "Strange",
	"LAPoke", "LAGreat", "LAUltra", "LAFeather", "LAWing", "LAJet", "LAHeavy", "LALeaden",
	"LAGigaton", "LAOrigin",
}

// BallFromCode maps a raw ball byte.
func BallFromCode(code uint8) Ball {
	if int(code) >= len(ballNames) {
		return BallNone
	}
	return Ball(code)
}

func (b Ball) String() string {
	if int(b) >= len(ballNames) {
		return "None"
	}
	return ballNames[b]
}
