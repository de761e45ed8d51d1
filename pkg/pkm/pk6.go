package pkm

import (
	"github.com/ssargent/pkx/pkg/codec"
	"github.com/ssargent/pkx/pkg/text"
)

// legacyGeometry is shared by the 6th and 7th generation formats.
func legacyGeometry(name string) codec.Geometry {
	return codec.Geometry{
		Name:       name,
		StoredSize: 0xE8,
		PartySize:  0x104,
		BlockSize:  0x38,
		Scheme:     codec.Shuffle4,
		Markers:    [2]int{0x58, 0xC8},
	}
}

// legacyLayout describes the byte positions used by PK6 and PK7.
func legacyLayout(format Format) *layout {
	return &layout{
		format:   format,
		geometry: legacyGeometry(format.String()),
		text:     text.Legacy,

		sanity:        u16At(codec.SanityOffset),
		checksum:      u16At(codec.ChecksumOffset),
		species:       u16At(0x08),
		heldItem:      u16At(0x0A),
		tid:           u16At(0x0C),
		sid:           u16At(0x0E),
		exp:           u32At(0x10),
		ability:       u8At(0x14),
		abilityNumber: u8At(0x15),
		pid:           u32At(0x18),
		nature:        u8At(0x1C),
		statNature:    u8At(0x1C),
		gender:        bitsAt(0x1D, 1, 0x3),
		form:          bitsAt(0x1D, 3, 0x1F),

		evs:    0x1E,
		moves:  0x5A,
		pp:     0x62,
		ppUps:  0x66,
		iv32:   u32At(0x74), // egg bit 30, nickname bit 31
		status: u32At(0xE8),

		currentHandler: u8At(0x93),
		htFriendship:   u8At(0xA2),
		otFriendship:   u8At(0xCA),
		ball:           u8At(0xDC),
		metLevel:       bitsAt(0xDD, 0, 0x7F),
		otGender:       bitsAt(0xDD, 7, 0x1),
		language:       u8At(0xE3),

		nickname: 0x40,
		htName:   0x78,
		otName:   0xB0,
	}
}

var pk6Layout = legacyLayout(FormatPK6)

// PK6 is a 6th generation record.
type PK6 struct {
	record
}

// NewPK6 copies data, decrypting it if needed. Only the length is checked.
func NewPK6(data []byte) (*PK6, error) {
	r, err := newRecord(pk6Layout, data)
	if err != nil {
		return nil, err
	}
	return &PK6{r}, nil
}

// NewPK6OrDefault returns DefaultPK6 when data has the wrong length or fails validation.
func NewPK6OrDefault(data []byte) *PK6 {
	pk, err := NewPK6(data)
	if err != nil || !pk.IsValid() {
		return DefaultPK6()
	}
	return pk
}

// DefaultPK6 is the empty stored-length record.
func DefaultPK6() *PK6 {
	return &PK6{defaultRecord(pk6Layout)}
}
