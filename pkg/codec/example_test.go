package codec_test

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/ssargent/pkx/internal/fixtures"
	"github.com/ssargent/pkx/pkg/codec"
)

// ExampleGeometry_Decrypt deciphers a PK7 record and checks its checksum.
func ExampleGeometry_Decrypt() {
	g := codec.Geometry{
		Name:       "pk7",
		StoredSize: 0xE8,
		PartySize:  0x104,
		BlockSize:  0x38,
		Scheme:     codec.Shuffle4,
		Markers:    [2]int{0x58, 0xC8},
	}

	plain, err := g.Decrypt(fixtures.GastlyEncrypted)
	if err != nil {
		log.Fatal(err)
	}

	stored := binary.LittleEndian.Uint16(plain[codec.ChecksumOffset:])
	fmt.Printf("encrypted: %v\n", g.IsEncrypted(plain))
	fmt.Printf("species: %d\n", binary.LittleEndian.Uint16(plain[8:]))
	fmt.Printf("checksum: %#04x valid: %v\n", stored, stored == g.Checksum(plain))

	// Output:
	// encrypted: false
	// species: 92
	// checksum: 0x9a8a valid: true
}
