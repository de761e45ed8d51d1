package types

// Stats holds one value per battle stat, in storage order.
type Stats struct {
	HP  uint8 `json:"hp" msgpack:"hp"`
	Atk uint8 `json:"atk" msgpack:"atk"`
	Def uint8 `json:"def" msgpack:"def"`
	Spe uint8 `json:"spe" msgpack:"spe"`
	SpA uint8 `json:"spa" msgpack:"spa"`
	SpD uint8 `json:"spd" msgpack:"spd"`
}

// UnpackIVs splits a packed IV word into six 5-bit values. Bits 30 and 31 hold
// the egg and nickname flags and are ignored.
func UnpackIVs(iv32 uint32) Stats {
	return Stats{
		HP:  uint8(iv32 & 0x1F),
		Atk: uint8((iv32 >> 5) & 0x1F),
		Def: uint8((iv32 >> 10) & 0x1F),
		Spe: uint8((iv32 >> 15) & 0x1F),
		SpA: uint8((iv32 >> 20) & 0x1F),
		SpD: uint8((iv32 >> 25) & 0x1F),
	}
}

// HiddenPowerIndex weights the parity of each stat and scales the sum to [0,15].
func (s Stats) HiddenPowerIndex() uint8 {
	sum := uint16(s.HP&1) |
		uint16(s.Atk&1)<<1 |
		uint16(s.Def&1)<<2 |
		uint16(s.Spe&1)<<3 |
		uint16(s.SpA&1)<<4 |
		uint16(s.SpD&1)<<5
	return uint8(sum * 15 / 63)
}

// Total sums all six values.
func (s Stats) Total() int {
	return int(s.HP) + int(s.Atk) + int(s.Def) + int(s.Spe) + int(s.SpA) + int(s.SpD)
}
