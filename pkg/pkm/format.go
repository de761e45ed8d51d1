package pkm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ssargent/pkx/pkg/codec"
)

// Format names one record generation.
type Format uint8

const (
	FormatPK6 Format = iota + 1
	FormatPK7
	FormatPK8
	FormatPA8
	FormatPK9
)

// ErrUnknownFormat is returned when a Format value or name is not supported.
var ErrUnknownFormat = errors.New("pkm: unknown format")

// Formats lists every supported format in generation order.
var Formats = []Format{FormatPK6, FormatPK7, FormatPK8, FormatPA8, FormatPK9}

func (f Format) String() string {
	switch f {
	case FormatPK6:
		return "pk6"
	case FormatPK7:
		return "pk7"
	case FormatPK8:
		return "pk8"
	case FormatPA8:
		return "pa8"
	case FormatPK9:
		return "pk9"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat accepts a format name such as "pk7", ignoring case.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func (f Format) layout() (*layout, error) {
	switch f {
	case FormatPK6:
		return pk6Layout, nil
	case FormatPK7:
		return pk7Layout, nil
	case FormatPK8:
		return pk8Layout, nil
	case FormatPA8:
		return pa8Layout, nil
	case FormatPK9:
		return pk9Layout, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
}

// Geometry returns the size and cipher parameters of the format.
func (f Format) Geometry() (codec.Geometry, error) {
	l, err := f.layout()
	if err != nil {
		return codec.Geometry{}, err
	}
	return l.geometry, nil
}

// Parse builds the record type matching format. Length errors wrap
// codec.ErrInvalidLength; content is not validated.
func Parse(format Format, data []byte) (Pkx, error) {
	switch format {
	case FormatPK6:
		return parse(data, NewPK6)
	case FormatPK7:
		return parse(data, NewPK7)
	case FormatPK8:
		return parse(data, NewPK8)
	case FormatPA8:
		return parse(data, NewPA8)
	case FormatPK9:
		return parse(data, NewPK9)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(format))
	}
}

// ParseOrDefault is Parse with bad lengths and invalid content folded into the
// format's default record. Only an unknown format yields an error.
func ParseOrDefault(format Format, data []byte) (Pkx, error) {
	switch format {
	case FormatPK6:
		return NewPK6OrDefault(data), nil
	case FormatPK7:
		return NewPK7OrDefault(data), nil
	case FormatPK8:
		return NewPK8OrDefault(data), nil
	case FormatPA8:
		return NewPA8OrDefault(data), nil
	case FormatPK9:
		return NewPK9OrDefault(data), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(format))
	}
}

// parse keeps a failed constructor from leaking a typed nil into the interface.
func parse[T Pkx](data []byte, build func([]byte) (T, error)) (Pkx, error) {
	pk, err := build(data)
	if err != nil {
		return nil, err
	}
	return pk, nil
}
