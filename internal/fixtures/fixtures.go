// Package fixtures holds known-good record buffers shared by tests across packages.
package fixtures

// GastlyEncrypted is a stored-length PK7 record as found in a save file.
var GastlyEncrypted = []byte{
	0xc8, 0x12, 0xb3, 0x6a, 0x00, 0x00, 0x8a, 0x9a, 0xf4, 0x4c, 0xcd, 0xd8,
	0x39, 0xf8, 0x1b, 0x37, 0xfe, 0xbf, 0x3b, 0x82, 0xd9, 0xce, 0xf5, 0x14,
	0xce, 0xfb, 0x6d, 0x41, 0x6b, 0x2e, 0x6a, 0xc8, 0xcb, 0xf9, 0xb6, 0x45,
	0xbe, 0x2c, 0x48, 0x8d, 0x0c, 0x52, 0x34, 0x40, 0xa1, 0xee, 0x03, 0x33,
	0xa4, 0x83, 0x53, 0xad, 0x68, 0xf3, 0xce, 0x97, 0xf5, 0x0c, 0x53, 0x23,
	0xbb, 0x12, 0x85, 0x72, 0xed, 0xd2, 0x42, 0x97, 0xbe, 0xa8, 0xb9, 0xd6,
	0x67, 0x5b, 0x5e, 0x37, 0xcf, 0x73, 0x7a, 0xd7, 0x93, 0x6a, 0x3c, 0x2e,
	0xa9, 0xd4, 0x30, 0xeb, 0xbf, 0xd5, 0xa7, 0x92, 0x9d, 0x66, 0x4c, 0xf7,
	0x29, 0x9c, 0x21, 0x19, 0xf1, 0x23, 0x03, 0x25, 0xd4, 0xa0, 0x8f, 0xcb,
	0x04, 0x85, 0xcc, 0xe4, 0xc9, 0x93, 0xae, 0x4c, 0x30, 0x71, 0x66, 0xe0,
	0xe2, 0xe0, 0xff, 0x68, 0x06, 0x48, 0xae, 0xf8, 0xe4, 0xb7, 0xc6, 0xfb,
	0x90, 0x19, 0xec, 0xc7, 0xd3, 0x81, 0x98, 0x68, 0x64, 0x70, 0x0a, 0x2a,
	0x82, 0x57, 0xa3, 0x30, 0x51, 0x6a, 0x50, 0x51, 0x69, 0x4d, 0xf1, 0xd3,
	0x6f, 0x44, 0xdc, 0xf6, 0xba, 0xa8, 0xee, 0x82, 0x4f, 0x28, 0xc6, 0x91,
	0xb5, 0x51, 0x27, 0x64, 0x74, 0x98, 0x85, 0xdc, 0x6b, 0x17, 0x18, 0x72,
	0x4a, 0x30, 0xf4, 0x4c, 0xf9, 0x97, 0x97, 0x36, 0xb4, 0xa9, 0x49, 0x60,
	0xc6, 0xe2, 0x06, 0xe3, 0x13, 0x62, 0x15, 0xe7, 0x68, 0x29, 0xec, 0x91,
	0xe5, 0xc8, 0xcf, 0xa7, 0xb2, 0x1f, 0x31, 0xbd, 0xf0, 0x7d, 0x49, 0x09,
	0x7a, 0x83, 0xb4, 0xb7, 0xba, 0xd5, 0xa3, 0x80, 0x56, 0xaf, 0xa6, 0x28,
	0x01, 0x9c, 0x99, 0xce,
}

// GastlyDecrypted is GastlyEncrypted after decryption.
var GastlyDecrypted = []byte{
	0xc8, 0x12, 0xb3, 0x6a, 0x00, 0x00, 0x8a, 0x9a, 0x5c, 0x00, 0x00, 0x00,
	0xb9, 0x88, 0x8d, 0x49, 0x00, 0x00, 0x00, 0x00, 0x1a, 0x01, 0x00, 0x00,
	0x7a, 0x0f, 0xaa, 0xce, 0x05, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x47, 0x00, 0x61, 0x00, 0x73, 0x00, 0x74, 0x00,
	0x6c, 0x00, 0x79, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5f, 0x00, 0x7a, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x14, 0x1e, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x5f, 0x00,
	0x7a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7a, 0x2a, 0x9d, 0x23,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x50, 0x00, 0x4b, 0x00,
	0x48, 0x00, 0x65, 0x00, 0x58, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x8a, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x12, 0x08, 0x17, 0x12, 0x08, 0x17, 0x00,
	0x62, 0xea, 0x4e, 0x00, 0x17, 0x01, 0x00, 0x21, 0x31, 0x34, 0x01, 0x02,
	0x00, 0x00, 0x00, 0x00,
}

// DittoEncrypted is a stored-length PK6 record as found in a save file.
var DittoEncrypted = []byte{
	0x80, 0x5c, 0x86, 0x02, 0x00, 0x00, 0xd6, 0x41, 0x20, 0x0e, 0x56, 0x4f,
	0xaa, 0xf1, 0xf4, 0x2f, 0xa5, 0x9e, 0xcc, 0xfe, 0x8b, 0xf2, 0x32, 0x20,
	0x51, 0xd1, 0x99, 0xdd, 0x42, 0xd2, 0x55, 0xe5, 0x05, 0x1f, 0x85, 0x2a,
	0x62, 0xe2, 0x2a, 0x14, 0x5a, 0x21, 0x96, 0xdb, 0x76, 0x2e, 0xd6, 0x4e,
	0x72, 0xa0, 0x72, 0x08, 0xa0, 0x2b, 0x59, 0x35, 0xf9, 0x56, 0xba, 0xc6,
	0x92, 0x55, 0x0c, 0x01, 0xf9, 0x2b, 0xdb, 0x58, 0xbd, 0x84, 0x5a, 0xc9,
	0x94, 0x77, 0x96, 0x72, 0x1d, 0x5b, 0x13, 0xd1, 0x8a, 0x7b, 0x7e, 0x07,
	0x93, 0xec, 0xe2, 0x81, 0x08, 0x4b, 0x13, 0xfa, 0xda, 0x5f, 0x4a, 0x6c,
	0x0a, 0xcb, 0x50, 0x90, 0xb9, 0x48, 0x37, 0x99, 0x68, 0x9b, 0x51, 0xe9,
	0xe7, 0x1b, 0xfe, 0x80, 0xcb, 0x56, 0xad, 0x23, 0xb8, 0x56, 0x50, 0x60,
	0x47, 0xf4, 0x59, 0x27, 0xee, 0x49, 0xb3, 0x76, 0xcb, 0xa7, 0xef, 0x77,
	0xe7, 0x59, 0xdb, 0xd8, 0xe9, 0x1e, 0x4e, 0xe9, 0xf5, 0xa9, 0xf3, 0xb7,
	0x77, 0x93, 0x7c, 0x45, 0x86, 0x5e, 0xef, 0x41, 0x3f, 0x0d, 0xb1, 0xb6,
	0x66, 0xf2, 0xd8, 0x86, 0x98, 0x64, 0xf2, 0xf2, 0x7f, 0x4b, 0x86, 0xf6,
	0x46, 0xda, 0x44, 0x7f, 0xec, 0x75, 0x34, 0xd4, 0xcd, 0x58, 0x4b, 0x7a,
	0x33, 0x21, 0x3e, 0xdf, 0x68, 0xb1, 0xe9, 0xbd, 0x55, 0x11, 0x91, 0x28,
	0x53, 0x6e, 0xfb, 0x5a, 0xc1, 0xcf, 0x38, 0x72, 0xec, 0x04, 0xd1, 0xac,
	0xe1, 0x8c, 0x5a, 0x51, 0x30, 0xb4, 0x8b, 0xa4, 0xec, 0x45, 0xbc, 0x43,
	0x6d, 0x14, 0xb8, 0x8e, 0x93, 0x80, 0x91, 0x1e, 0x91, 0xca, 0x14, 0xb7,
	0xdf, 0xf2, 0xb3, 0x26,
}

// DittoDecrypted is DittoEncrypted after decryption.
var DittoDecrypted = []byte{
	0x80, 0x5c, 0x86, 0x02, 0x00, 0x00, 0xd6, 0x41, 0x84, 0x00, 0x18, 0x01,
	0x56, 0xf6, 0x42, 0xc8, 0x40, 0x42, 0x0f, 0x00, 0x96, 0x04, 0x00, 0x00,
	0x23, 0x0f, 0x37, 0x31, 0x03, 0x04, 0xfc, 0x00, 0x06, 0xfc, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f, 0x31, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x41, 0x00, 0x64, 0x00, 0x61, 0x00, 0x6d, 0x00,
	0x61, 0x00, 0x6e, 0x00, 0x74, 0x00, 0x20, 0x00, 0x36, 0x00, 0x49, 0x00,
	0x56, 0x00, 0x73, 0x00, 0x00, 0x00, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xbf,
	0x45, 0x00, 0x56, 0x00, 0x92, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x01, 0x2c, 0x31, 0x0a, 0x12, 0x2c, 0x31, 0x10, 0x31,
	0x00, 0x31, 0x00, 0x00, 0x00, 0x00, 0x46, 0x00, 0x03, 0x04, 0x00, 0x00,
	0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x44, 0x00, 0x69, 0x00,
	0x74, 0x00, 0x74, 0x00, 0x6f, 0x00, 0x20, 0x00, 0x69, 0x00, 0x73, 0x00,
	0x20, 0x00, 0x92, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46, 0x03,
	0x07, 0x0f, 0x97, 0x00, 0x02, 0x00, 0x00, 0x00, 0x0c, 0x0c, 0x19, 0x00,
	0x00, 0x00, 0x94, 0x00, 0x0b, 0x1e, 0x00, 0x18, 0x12, 0x0a, 0x01, 0x03,
	0x00, 0x00, 0x00, 0x00,
}

// Clone returns a private copy of b so tests can mutate it freely.
func Clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
