package pkm

import (
	"github.com/ssargent/pkx/pkg/codec"
	"github.com/ssargent/pkx/pkg/reader"
	"github.com/ssargent/pkx/pkg/text"
)

var pk8Layout = &layout{
	format: FormatPK8,
	geometry: codec.Geometry{
		Name:       FormatPK8.String(),
		StoredSize: 0x148,
		PartySize:  0x158,
		BlockSize:  0x50,
		Scheme:     codec.Swap3,
		Markers:    [2]int{0x70, 0x110},
	},
	text: text.Modern,

	sanity:        u16At(codec.SanityOffset),
	checksum:      u16At(codec.ChecksumOffset),
	species:       u16At(0x08),
	heldItem:      u16At(0x0A),
	tid:           u16At(0x0C),
	sid:           u16At(0x0E),
	exp:           u32At(0x10),
	ability:       u16At(0x14),
	abilityNumber: bitsAt(0x16, 0, 0x7),
	pid:           u32At(0x1C),
	nature:        u8At(0x20),
	statNature:    u8At(0x21),
	gender:        bitsAt(0x22, 2, 0x3),
	form:          u16At(0x24),

	evs:    0x26,
	moves:  0x72,
	pp:     0x7A,
	ppUps:  0x7E,
	iv32:   u32At(0x8C), // egg bit 30, nickname bit 31
	status: u32At(0x94),

	currentHandler: u8At(0xC4),
	htFriendship:   u8At(0xC8),
	otFriendship:   u8At(0x112),
	ball:           u8At(0x124),
	metLevel:       bitsAt(0x125, 0, 0x7F),
	otGender:       bitsAt(0x125, 7, 0x1),
	language:       u8At(0xE2),

	nickname: 0x58,
	htName:   0xA8,
	otName:   0xF8,
}

const (
	pk8DynamaxLevel  = 0x90
	pk8GigantamaxBit = 1 << 4
	pk8FlagsOffset   = 0x16
)

// PK8 is an 8th generation (Sword/Shield) record.
type PK8 struct {
	record
}

// NewPK8 copies data, decrypting it if needed. Only the length is checked.
func NewPK8(data []byte) (*PK8, error) {
	r, err := newRecord(pk8Layout, data)
	if err != nil {
		return nil, err
	}
	return &PK8{r}, nil
}

// NewPK8OrDefault returns DefaultPK8 when data has the wrong length or fails validation.
func NewPK8OrDefault(data []byte) *PK8 {
	pk, err := NewPK8(data)
	if err != nil || !pk.IsValid() {
		return DefaultPK8()
	}
	return pk
}

// DefaultPK8 is the empty stored-length record.
func DefaultPK8() *PK8 {
	return &PK8{defaultRecord(pk8Layout)}
}

// DynamaxLevel ranges from 0 to 10.
func (p *PK8) DynamaxLevel() uint8 { return reader.U8(p.data, pk8DynamaxLevel) }

func (p *PK8) CanGigantamax() bool {
	return reader.U8(p.data, pk8FlagsOffset)&pk8GigantamaxBit != 0
}
