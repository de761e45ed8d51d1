package pkm

import (
	"github.com/ssargent/pkx/pkg/codec"
	"github.com/ssargent/pkx/pkg/reader"
	"github.com/ssargent/pkx/pkg/text"
)

// nameLength is the byte width of every name field: 12 UTF-16 units plus a terminator.
const nameLength = 0x1A

// field locates an integer value inside a record buffer.
type field struct {
	off   int
	size  int // 1, 2 or 4 bytes
	shift uint8
	mask  uint32 // zero keeps every bit
}

func (f field) read(buf []byte) uint32 {
	var v uint32
	switch f.size {
	case 1:
		v = uint32(reader.U8(buf, f.off))
	case 2:
		v = uint32(reader.U16(buf, f.off))
	default:
		v = reader.U32(buf, f.off)
	}
	v >>= f.shift
	if f.mask != 0 {
		v &= f.mask
	}
	return v
}

func u8At(off int) field  { return field{off: off, size: 1} }
func u16At(off int) field { return field{off: off, size: 2} }
func u32At(off int) field { return field{off: off, size: 4} }

// bitsAt selects mask bits of the byte at off after shifting right by shift.
func bitsAt(off int, shift uint8, mask uint32) field {
	return field{off: off, size: 1, shift: shift, mask: mask}
}

// layout maps every Pkx accessor onto a byte position for one format.
type layout struct {
	format   Format
	geometry codec.Geometry
	text     text.Converter

	sanity        field
	checksum      field
	species       field
	heldItem      field
	tid           field
	sid           field
	exp           field
	ability       field
	abilityNumber field
	pid           field
	nature        field
	statNature    field
	gender        field
	form          field

	evs    int // six consecutive bytes
	moves  int // four u16 values
	pp     int // four bytes
	ppUps  int // four bytes
	iv32   field
	status field

	currentHandler field
	htFriendship   field
	otFriendship   field
	ball           field
	metLevel       field
	otGender       field
	language       field

	nickname int
	htName   int
	otName   int
}

func (l *layout) name(buf []byte, off int) string {
	return l.text(reader.Bytes(buf, off, nameLength))
}
