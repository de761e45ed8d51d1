package types

// Gender of a creature or trainer.
type Gender uint8

const (
	GenderMale Gender = iota
	GenderFemale
	GenderGenderless
	GenderNone
)

// GenderFromCode maps the two-bit gender field.
func GenderFromCode(code uint8) Gender {
	if code > uint8(GenderGenderless) {
		return GenderNone
	}
	return Gender(code)
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderGenderless:
		return "Genderless"
	default:
		return "None"
	}
}
