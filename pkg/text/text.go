// Package text decodes the fixed-width UTF-16LE name fields stored in records.
package text

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Converter turns a raw name field into a string.
type Converter func(data []byte) string

var (
	// Legacy decodes 6th and 7th generation names, mapping the private-use
	// gender glyphs onto the standard symbols.
	Legacy Converter = func(data []byte) string { return decode(data, legacyGlyphs) }

	// Modern decodes 8th generation and later names as plain UTF-16.
	Modern Converter = func(data []byte) string { return decode(data, nil) }
)

var legacyGlyphs = strings.NewReplacer(
	"\uE08F", "♀",
	"\uE08E", "♂",
	"\u246E", "♀",
	"\u246D", "♂",
)

// decode reads words up to the first NUL terminator. Unpaired surrogates are
// dropped rather than reported.
func decode(data []byte, glyphs *strings.Replacer) string {
	data = data[:terminator(data)]
	if len(data) == 0 {
		return ""
	}

	raw, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(pairedOnly(data))
	if err != nil {
		return ""
	}

	s := string(raw)
	if glyphs != nil {
		s = glyphs.Replace(s)
	}
	return s
}

// pairedOnly copies the words of data, skipping surrogates that are not part of
// a high/low pair.
func pairedOnly(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i+1 < len(data); i += 2 {
		w := binary.LittleEndian.Uint16(data[i:])
		switch {
		case isHigh(w) && i+3 < len(data) && isLow(binary.LittleEndian.Uint16(data[i+2:])):
			out = append(out, data[i:i+4]...)
			i += 2
		case isHigh(w), isLow(w):
		default:
			out = append(out, data[i:i+2]...)
		}
	}
	return out
}

func isHigh(w uint16) bool { return w >= 0xD800 && w < 0xDC00 }
func isLow(w uint16) bool  { return w >= 0xDC00 && w < 0xE000 }

// terminator returns the byte offset of the first NUL word, ignoring a trailing
// odd byte.
func terminator(data []byte) int {
	end := len(data) &^ 1
	for i := 0; i < end; i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return end
}
