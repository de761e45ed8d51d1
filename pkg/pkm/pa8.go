package pkm

import (
	"github.com/ssargent/pkx/pkg/codec"
	"github.com/ssargent/pkx/pkg/reader"
	"github.com/ssargent/pkx/pkg/text"
)

var pa8Layout = &layout{
	format: FormatPA8,
	geometry: codec.Geometry{
		Name:       FormatPA8.String(),
		StoredSize: 0x168,
		PartySize:  0x178,
		BlockSize:  0x58,
		Scheme:     codec.Swap3,
		Markers:    [2]int{0x78, 0x128},
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
	moves:  0x54,
	pp:     0x5C,
	ppUps:  0x86,
	iv32:   u32At(0x94), // egg bit 30, nickname bit 31
	status: u32At(0x9C),

	currentHandler: u8At(0xD4),
	htFriendship:   u8At(0xD8),
	otFriendship:   u8At(0x12A),
	ball:           u8At(0x137),
	metLevel:       bitsAt(0x13D, 0, 0x7F),
	otGender:       bitsAt(0x13D, 7, 0x1),
	language:       u8At(0xF2),

	nickname: 0x60,
	htName:   0xB8,
	otName:   0x110,
}

const (
	pa8FlagsOffset = 0x16
	pa8AlphaBit    = 1 << 5
	pa8NobleBit    = 1 << 6
)

// PA8 is a Legends: Arceus record.
type PA8 struct {
	record
}

// NewPA8 copies data, decrypting it if needed. Only the length is checked.
func NewPA8(data []byte) (*PA8, error) {
	r, err := newRecord(pa8Layout, data)
	if err != nil {
		return nil, err
	}
	return &PA8{r}, nil
}

// NewPA8OrDefault returns DefaultPA8 when data has the wrong length or fails validation.
func NewPA8OrDefault(data []byte) *PA8 {
	pk, err := NewPA8(data)
	if err != nil || !pk.IsValid() {
		return DefaultPA8()
	}
	return pk
}

// DefaultPA8 is the empty stored-length record.
func DefaultPA8() *PA8 {
	return &PA8{defaultRecord(pa8Layout)}
}

func (p *PA8) IsAlpha() bool { return reader.U8(p.data, pa8FlagsOffset)&pa8AlphaBit != 0 }
func (p *PA8) IsNoble() bool { return reader.U8(p.data, pa8FlagsOffset)&pa8NobleBit != 0 }
