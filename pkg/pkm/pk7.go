package pkm

var pk7Layout = legacyLayout(FormatPK7)

// PK7 is a 7th generation record. It shares the 6th generation layout.
type PK7 struct {
	record
}

// NewPK7 copies data, decrypting it if needed. Only the length is checked.
func NewPK7(data []byte) (*PK7, error) {
	r, err := newRecord(pk7Layout, data)
	if err != nil {
		return nil, err
	}
	return &PK7{r}, nil
}

// NewPK7OrDefault returns DefaultPK7 when data has the wrong length or fails validation.
func NewPK7OrDefault(data []byte) *PK7 {
	pk, err := NewPK7(data)
	if err != nil || !pk.IsValid() {
		return DefaultPK7()
	}
	return pk
}

// DefaultPK7 is the empty stored-length record.
func DefaultPK7() *PK7 {
	return &PK7{defaultRecord(pk7Layout)}
}
