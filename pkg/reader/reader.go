// Package reader provides total little-endian field readers over record buffers.
//
// Every reader returns the zero value when the requested range does not fit in
// the buffer, so callers can read a field at any offset without bounds checks.
package reader

import "encoding/binary"

// Unsigned is the set of integer widths a record field can occupy.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Read returns the little-endian T stored at off, or zero if the value does not
// fit inside buf.
func Read[T Unsigned](buf []byte, off int) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(U8(buf, off))
	case uint16:
		return T(U16(buf, off))
	case uint32:
		return T(U32(buf, off))
	default:
		return T(U64(buf, off))
	}
}

// U8 returns the byte at off. Returns 0 when off is out of range.
func U8(buf []byte, off int) uint8 {
	if !fits(buf, off, 1) {
		return 0
	}
	return buf[off]
}

// U16 reads a little-endian uint16 at off. Returns 0 when buf is too short.
func U16(buf []byte, off int) uint16 {
	if !fits(buf, off, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(buf[off:])
}

// U32 reads a little-endian uint32 at off. Returns 0 when buf is too short.
func U32(buf []byte, off int) uint32 {
	if !fits(buf, off, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[off:])
}

// U64 reads a little-endian uint64 at off. Returns 0 when buf is too short.
func U64(buf []byte, off int) uint64 {
	if !fits(buf, off, 8) {
		return 0
	}
	return binary.LittleEndian.Uint64(buf[off:])
}

// Bytes returns a copy of n bytes starting at off. Bytes past the end of buf
// read as zero.
func Bytes(buf []byte, off, n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, n)
	if off < 0 || off >= len(buf) {
		return out
	}
	copy(out, buf[off:])
	return out
}

func fits(buf []byte, off, width int) bool {
	return off >= 0 && off <= len(buf)-width
}
