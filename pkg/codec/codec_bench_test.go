//go:build bench
// +build bench

package codec

import (
	"testing"

	"github.com/ssargent/pkx/internal/fixtures"
)

func BenchmarkGeometry_Decrypt(b *testing.B) {
	benchmarks := []struct {
		name string
		g    Geometry
	}{
		{"shuffle4", legacy},
		{"swap3", withScheme(legacy, Swap3)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := bm.g.Decrypt(fixtures.GastlyEncrypted); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGeometry_Encrypt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := legacy.Encrypt(fixtures.GastlyDecrypted); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGeometry_Checksum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = legacy.Checksum(fixtures.GastlyDecrypted)
	}
}
