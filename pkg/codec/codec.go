package codec

import (
	"errors"
	"fmt"

	"github.com/ssargent/pkx/pkg/reader"
)

const (
	// HeaderSize is the length of the unenciphered record header.
	HeaderSize = 8
	// BlockCount is the number of payload blocks that get reordered.
	BlockCount = 4
	// ChecksumOffset is where the stored checksum lives in the header.
	ChecksumOffset = 6
	// SanityOffset is where the must-be-zero sanity word lives in the header.
	SanityOffset = 4

	seedMultiplier = 0x41C64E6D
	seedIncrement  = 0x6073
)

// ErrInvalidLength is returned for buffers that are neither stored nor party length.
var ErrInvalidLength = errors.New("codec: invalid record length")

// Scheme selects how the payload blocks are reordered.
type Scheme uint8

const (
	// Shuffle4 copies blocks through the 128-entry position table.
	Shuffle4 Scheme = iota
	// Swap3 rearranges blocks in place with up to three pairwise swaps.
	Swap3
)

func (s Scheme) String() string {
	switch s {
	case Shuffle4:
		return "shuffle4"
	case Swap3:
		return "swap3"
	default:
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
}

// permute reorders the blocks of buf in place using the given table row.
func (s Scheme) permute(buf []byte, row, blockSize int) {
	payload := buf[HeaderSize : HeaderSize+BlockCount*blockSize]

	switch s {
	case Swap3:
		tmp := make([]byte, blockSize)
		for _, sw := range blockSwaps[row*3 : row*3+3] {
			if sw.src == sw.dst {
				continue
			}
			a := payload[int(sw.src)*blockSize : int(sw.src+1)*blockSize]
			b := payload[int(sw.dst)*blockSize : int(sw.dst+1)*blockSize]
			copy(tmp, a)
			copy(a, b)
			copy(b, tmp)
		}
	default:
		src := make([]byte, len(payload))
		copy(src, payload)
		for block := 0; block < BlockCount; block++ {
			from := int(blockPosition[row*BlockCount+block]) * blockSize
			copy(payload[block*blockSize:(block+1)*blockSize], src[from:from+blockSize])
		}
	}
}

// Geometry describes the fixed shape of one record format.
type Geometry struct {
	Name       string
	StoredSize int
	PartySize  int
	BlockSize  int
	Scheme     Scheme

	// Markers are two u16 offsets that are always zero in a decrypted record.
	Markers [2]int
}

// ValidLength reports whether n is the stored or party length of the format.
func (g Geometry) ValidLength(n int) bool {
	return n == g.StoredSize || n == g.PartySize
}

// CheckLength returns ErrInvalidLength when data cannot hold a record of this format.
func (g Geometry) CheckLength(data []byte) error {
	if !g.ValidLength(len(data)) {
		return fmt.Errorf("%w: %s record is %d bytes, want %d or %d",
			ErrInvalidLength, g.Name, len(data), g.StoredSize, g.PartySize)
	}
	return nil
}

// IsEncrypted guesses whether data is enciphered by checking the marker words.
// A decrypted record always has both markers at zero.
func (g Geometry) IsEncrypted(data []byte) bool {
	return reader.U16(data, g.Markers[0]) != 0 || reader.U16(data, g.Markers[1]) != 0
}

// Decrypt deciphers data and restores the block order.
func (g Geometry) Decrypt(data []byte) ([]byte, error) {
	if err := g.CheckLength(data); err != nil {
		return nil, err
	}

	seed := Seed(data)
	out := clone(data)
	g.crypt(out, seed)
	g.Scheme.permute(out, ShuffleIndex(seed), g.BlockSize)
	return out, nil
}

// Encrypt shuffles the blocks back into stored order and enciphers the result.
func (g Geometry) Encrypt(data []byte) ([]byte, error) {
	if err := g.CheckLength(data); err != nil {
		return nil, err
	}

	seed := Seed(data)
	out := clone(data)
	g.Scheme.permute(out, int(blockPositionInvert[ShuffleIndex(seed)]), g.BlockSize)
	g.crypt(out, seed)
	return out, nil
}

// DecryptIfNeeded decrypts data unless it already looks decrypted, in which
// case an unchanged copy is returned.
func (g Geometry) DecryptIfNeeded(data []byte) ([]byte, error) {
	if !g.IsEncrypted(data) {
		if err := g.CheckLength(data); err != nil {
			return nil, err
		}
		return clone(data), nil
	}
	return g.Decrypt(data)
}

// EncryptIfNeeded encrypts data unless it already looks encrypted, in which
// case an unchanged copy is returned.
func (g Geometry) EncryptIfNeeded(data []byte) ([]byte, error) {
	if g.IsEncrypted(data) {
		if err := g.CheckLength(data); err != nil {
			return nil, err
		}
		return clone(data), nil
	}
	return g.Encrypt(data)
}

// Checksum sums the little-endian words of the stored region after the header.
// Party stats are not covered. Missing bytes count as zero.
func (g Geometry) Checksum(data []byte) uint16 {
	end := min(len(data), g.StoredSize)
	if end <= HeaderSize {
		return 0
	}
	return ChecksumWords(data[HeaderSize:end])
}

func (g Geometry) crypt(buf []byte, seed uint32) {
	Crypt(buf[HeaderSize:g.StoredSize], seed)
	if len(buf) > g.StoredSize {
		Crypt(buf[g.StoredSize:], seed)
	}
}

// Seed returns the encryption constant stored in the first four bytes.
func Seed(data []byte) uint32 {
	return reader.U32(data, 0)
}

// ShuffleIndex derives the block permutation row from a seed.
func ShuffleIndex(seed uint32) int {
	return int(seed>>13) & 31
}

// Crypt XORs every 16-bit word of buf in place with the keystream generated from
// seed. A trailing odd byte is left untouched.
func Crypt(buf []byte, seed uint32) {
	for i := 0; i+1 < len(buf); i += 2 {
		seed = seed*seedMultiplier + seedIncrement
		buf[i] ^= byte(seed >> 16)
		buf[i+1] ^= byte(seed >> 24)
	}
}

// ChecksumWords returns the wrapping sum of the little-endian words in b.
func ChecksumWords(b []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(b); i += 2 {
		sum += uint16(b[i]) | uint16(b[i+1])<<8
	}
	return sum
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
