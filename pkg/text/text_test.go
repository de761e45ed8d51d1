package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func utf16le(units ...uint16) []byte {
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		conv   Converter
		data   []byte
		expect string
	}{
		{"empty", Modern, nil, ""},
		{"stops at nul", Modern, utf16le('A', 'b', 0, 'c'), "Ab"},
		{"no terminator", Modern, utf16le('G', 'o'), "Go"},
		{"odd trailing byte", Modern, append(utf16le('O', 'K'), 'x'), "OK"},
		{"unpaired surrogate dropped", Modern, utf16le('a', 0xD800, 'b'), "ab"},
		{"surrogate pair", Modern, utf16le(0xD83D, 0xDE00), "\U0001F600"},
		{"lone low surrogate dropped", Modern, utf16le(0xDE00, 'x'), "x"},
		{"high surrogate before plain word", Modern, utf16le(0xD83D, 'y', 'z'), "yz"},
		{"trailing high surrogate dropped", Modern, utf16le('q', 0xD83D), "q"},
		{"replacement character kept", Modern, utf16le('a', 0xFFFD, 'b'), "a\uFFFDb"},
		{"accented", Modern, utf16le('M', 0xE9, 't', 'a', 'm', 'o', 'r', 'p', 'h'), "Métamorph"},
		{"legacy female glyph", Legacy, utf16le('N', 'i', 'd', 'o', 0xE08F), "Nido♀"},
		{"legacy male glyph", Legacy, utf16le('N', 'i', 'd', 'o', 0x246D), "Nido♂"},
		{"modern keeps private use", Modern, utf16le(0xE08F), "\uE08F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.conv(tt.data))
		})
	}
}

func TestTerminator(t *testing.T) {
	assert.Equal(t, 0, terminator(utf16le(0, 'a')))
	assert.Equal(t, 4, terminator(utf16le('a', 'b')))
	// a zero low byte alone is not a terminator
	assert.Equal(t, 4, terminator([]byte{0x00, 0x01, 0x41, 0x00}))
}
