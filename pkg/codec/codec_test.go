package codec

import (
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/pkx/internal/fixtures"
)

var (
	legacy = Geometry{Name: "pk7", StoredSize: 0xE8, PartySize: 0x104, BlockSize: 0x38, Scheme: Shuffle4, Markers: [2]int{0x58, 0xC8}}
	gen8   = Geometry{Name: "pk8", StoredSize: 0x148, PartySize: 0x158, BlockSize: 0x50, Scheme: Swap3, Markers: [2]int{0x70, 0x110}}
	arceus = Geometry{Name: "pa8", StoredSize: 0x168, PartySize: 0x178, BlockSize: 0x58, Scheme: Swap3, Markers: [2]int{0x78, 0x128}}
)

func withScheme(g Geometry, s Scheme) Geometry {
	g.Scheme = s
	return g
}

func randomRecord(rng *rand.Rand, size int, shuffle int) []byte {
	buf := make([]byte, size)
	rng.Read(buf)
	seed := rng.Uint32()&^(31<<13) | uint32(shuffle)<<13
	binary.LittleEndian.PutUint32(buf, seed)
	return buf
}

func TestDecryptFixtures(t *testing.T) {
	tests := []struct {
		name      string
		encrypted []byte
		decrypted []byte
	}{
		{"gastly", fixtures.GastlyEncrypted, fixtures.GastlyDecrypted},
		{"ditto", fixtures.DittoEncrypted, fixtures.DittoDecrypted},
	}

	for _, tt := range tests {
		for _, scheme := range []Scheme{Shuffle4, Swap3} {
			g := withScheme(legacy, scheme)
			t.Run(tt.name+"/"+scheme.String(), func(t *testing.T) {
				plain, err := g.Decrypt(tt.encrypted)
				require.NoError(t, err)
				assert.Equal(t, tt.decrypted, plain)

				cipher, err := g.Encrypt(tt.decrypted)
				require.NoError(t, err)
				assert.Equal(t, tt.encrypted, cipher)
			})
		}
	}
}

func TestSchemesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for shuffle := 0; shuffle < 32; shuffle++ {
		data := randomRecord(rng, gen8.StoredSize, shuffle)
		require.Equal(t, shuffle, ShuffleIndex(Seed(data)))

		a, err := withScheme(gen8, Shuffle4).Decrypt(data)
		require.NoError(t, err)
		b, err := withScheme(gen8, Swap3).Decrypt(data)
		require.NoError(t, err)
		assert.Equal(t, a, b, "decrypt shuffle index %d", shuffle)

		a, err = withScheme(gen8, Shuffle4).Encrypt(data)
		require.NoError(t, err)
		b, err = withScheme(gen8, Swap3).Encrypt(data)
		require.NoError(t, err)
		assert.Equal(t, a, b, "encrypt shuffle index %d", shuffle)
	}
}

func TestSwapTableMatchesPositions(t *testing.T) {
	for row := 0; row < 32; row++ {
		order := []uint8{0, 1, 2, 3}
		for _, sw := range blockSwaps[row*3 : row*3+3] {
			order[sw.src], order[sw.dst] = order[sw.dst], order[sw.src]
		}
		assert.Equal(t, blockPosition[row*4:row*4+4], order, "row %d", row)
	}
}

func TestInverseRows(t *testing.T) {
	for row := 0; row < 32; row++ {
		fwd := blockPosition[row*4 : row*4+4]
		inv := blockPosition[int(blockPositionInvert[row])*4 : int(blockPositionInvert[row])*4+4]
		for slot := 0; slot < 4; slot++ {
			assert.Equal(t, uint8(slot), inv[fwd[slot]], "row %d slot %d", row, slot)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, g := range []Geometry{legacy, gen8, arceus, withScheme(legacy, Swap3), withScheme(gen8, Shuffle4)} {
		for _, size := range []int{g.StoredSize, g.PartySize} {
			for shuffle := 0; shuffle < 32; shuffle++ {
				data := randomRecord(rng, size, shuffle)

				enc, err := g.Encrypt(data)
				require.NoError(t, err)
				dec, err := g.Decrypt(enc)
				require.NoError(t, err)
				assert.Equal(t, data, dec, "%s/%s size %d shuffle %d", g.Name, g.Scheme, size, shuffle)

				dec, err = g.Decrypt(data)
				require.NoError(t, err)
				enc, err = g.Encrypt(dec)
				require.NoError(t, err)
				assert.Equal(t, data, enc, "%s/%s size %d shuffle %d", g.Name, g.Scheme, size, shuffle)
			}
		}
	}
}

func TestHeaderUntouched(t *testing.T) {
	enc, err := legacy.Encrypt(fixtures.GastlyDecrypted)
	require.NoError(t, err)
	assert.Equal(t, fixtures.GastlyDecrypted[:HeaderSize], enc[:HeaderSize])
}

func TestInputNotModified(t *testing.T) {
	in := fixtures.Clone(fixtures.GastlyEncrypted)

	_, err := legacy.Decrypt(in)
	require.NoError(t, err)
	assert.Equal(t, fixtures.GastlyEncrypted, in)

	_, err = legacy.Encrypt(in)
	require.NoError(t, err)
	assert.Equal(t, fixtures.GastlyEncrypted, in)
}

func TestPartyRegion(t *testing.T) {
	party := make([]byte, legacy.PartySize)
	copy(party, fixtures.GastlyEncrypted)
	for i := legacy.StoredSize; i < legacy.PartySize; i++ {
		party[i] = byte(i)
	}

	dec, err := legacy.Decrypt(party)
	require.NoError(t, err)
	assert.Equal(t, fixtures.GastlyDecrypted, dec[:legacy.StoredSize])

	tail := fixtures.Clone(party[legacy.StoredSize:])
	Crypt(tail, Seed(party))
	assert.Equal(t, tail, dec[legacy.StoredSize:])
	assert.Equal(t, uint16(0x9A8A), legacy.Checksum(dec))
}

func TestIsEncrypted(t *testing.T) {
	assert.True(t, legacy.IsEncrypted(fixtures.GastlyEncrypted))
	assert.False(t, legacy.IsEncrypted(fixtures.GastlyDecrypted))
	assert.True(t, legacy.IsEncrypted(fixtures.DittoEncrypted))
	assert.False(t, legacy.IsEncrypted(fixtures.DittoDecrypted))
	assert.False(t, legacy.IsEncrypted(make([]byte, legacy.StoredSize)))
}

func TestIfNeeded(t *testing.T) {
	t.Run("encrypt leaves ciphertext alone", func(t *testing.T) {
		out, err := legacy.EncryptIfNeeded(fixtures.GastlyEncrypted)
		require.NoError(t, err)
		assert.Equal(t, fixtures.GastlyEncrypted, out)
	})

	t.Run("encrypt enciphers plaintext", func(t *testing.T) {
		out, err := legacy.EncryptIfNeeded(fixtures.GastlyDecrypted)
		require.NoError(t, err)
		assert.Equal(t, fixtures.GastlyEncrypted, out)
	})

	t.Run("decrypt leaves plaintext alone", func(t *testing.T) {
		out, err := legacy.DecryptIfNeeded(fixtures.GastlyDecrypted)
		require.NoError(t, err)
		assert.Equal(t, fixtures.GastlyDecrypted, out)
	})

	t.Run("decrypt deciphers ciphertext", func(t *testing.T) {
		out, err := legacy.DecryptIfNeeded(fixtures.GastlyEncrypted)
		require.NoError(t, err)
		assert.Equal(t, fixtures.GastlyDecrypted, out)
	})

	t.Run("bad length", func(t *testing.T) {
		_, err := legacy.DecryptIfNeeded(make([]byte, 10))
		assert.ErrorIs(t, err, ErrInvalidLength)
		_, err = legacy.EncryptIfNeeded(make([]byte, 10))
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint16(0x9A8A), legacy.Checksum(fixtures.GastlyDecrypted))
	assert.Equal(t, uint16(0x41D6), legacy.Checksum(fixtures.DittoDecrypted))
	assert.Equal(t, uint16(0x9A8A), ChecksumWords(fixtures.GastlyDecrypted[HeaderSize:legacy.StoredSize]))
	assert.Zero(t, legacy.Checksum(make([]byte, legacy.StoredSize)))
	assert.Zero(t, legacy.Checksum(nil))
}

func TestChecksumRange(t *testing.T) {
	short := fixtures.GastlyDecrypted[:0x21]
	assert.Equal(t, ChecksumWords(short[HeaderSize:0x20]), legacy.Checksum(short))

	party := append(fixtures.Clone(fixtures.GastlyDecrypted), 0xFF, 0xFF, 0x12, 0x34)
	assert.Equal(t, uint16(0x9A8A), legacy.Checksum(party))
}

func TestChecksumWraps(t *testing.T) {
	buf := make([]byte, legacy.StoredSize)
	binary.LittleEndian.PutUint16(buf[8:], 0xFFFF)
	binary.LittleEndian.PutUint16(buf[10:], 0x0002)
	assert.Equal(t, uint16(0x0001), legacy.Checksum(buf))
}

func TestInvalidLength(t *testing.T) {
	for _, n := range []int{0, 1, legacy.StoredSize - 1, legacy.StoredSize + 1, legacy.PartySize + 2} {
		_, err := legacy.Decrypt(make([]byte, n))
		assert.True(t, errors.Is(err, ErrInvalidLength), "decrypt %d bytes", n)
		_, err = legacy.Encrypt(make([]byte, n))
		assert.True(t, errors.Is(err, ErrInvalidLength), "encrypt %d bytes", n)
	}

	assert.True(t, legacy.ValidLength(0xE8))
	assert.True(t, legacy.ValidLength(0x104))
	assert.False(t, legacy.ValidLength(0x148))
}

func TestCryptSelfInverse(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7}
	Crypt(buf, 0xDEADBEEF)
	assert.NotEqual(t, []byte{1, 2, 3, 4, 5, 6, 7}, buf)
	assert.Equal(t, byte(7), buf[6], "odd trailing byte is not enciphered")
	Crypt(buf, 0xDEADBEEF)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7}, buf)
}

func TestShuffleIndex(t *testing.T) {
	assert.Equal(t, 24, ShuffleIndex(Seed(fixtures.GastlyEncrypted)))
	assert.Equal(t, 18, ShuffleIndex(Seed(fixtures.DittoEncrypted)))
	assert.Equal(t, 31, ShuffleIndex(0xFFFFFFFF))
	assert.Equal(t, 0, ShuffleIndex(0x1FFF))
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "shuffle4", Shuffle4.String())
	assert.Equal(t, "swap3", Swap3.String())
	assert.Equal(t, "Scheme(9)", Scheme(9).String())
}
