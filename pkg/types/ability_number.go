package types

// AbilityNumber tells which of the species' ability slots is active.
type AbilityNumber uint8

const (
	AbilityNumberNone   AbilityNumber = 0
	AbilityNumberFirst  AbilityNumber = 1
	AbilityNumberSecond AbilityNumber = 2
	AbilityNumberHidden AbilityNumber = 4
)

// AbilityNumberFromCode maps the raw slot flag. Only single-bit values are valid.
func AbilityNumberFromCode(code uint8) AbilityNumber {
	switch AbilityNumber(code) {
	case AbilityNumberFirst, AbilityNumberSecond, AbilityNumberHidden:
		return AbilityNumber(code)
	default:
		return AbilityNumberNone
	}
}

func (a AbilityNumber) String() string {
	switch a {
	case AbilityNumberFirst:
		return "First"
	case AbilityNumberSecond:
		return "Second"
	case AbilityNumberHidden:
		return "Hidden"
	default:
		return "None"
	}
}
