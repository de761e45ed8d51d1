package codec

// blockPosition lists, for each shuffle index, the source block that lands in
// destination slots 0 through 3 when a record is decrypted.
var blockPosition = [128]uint8{
	0, 1, 2, 3,
	0, 1, 3, 2,
	0, 2, 1, 3,
	0, 3, 1, 2,
	0, 2, 3, 1,
	0, 3, 2, 1,
	1, 0, 2, 3,
	1, 0, 3, 2,
	2, 0, 1, 3,
	3, 0, 1, 2,
	2, 0, 3, 1,
	3, 0, 2, 1,
	1, 2, 0, 3,
	1, 3, 0, 2,
	2, 1, 0, 3,
	3, 1, 0, 2,
	2, 3, 0, 1,
	3, 2, 0, 1,
	1, 2, 3, 0,
	1, 3, 2, 0,
	2, 1, 3, 0,
	3, 1, 2, 0,
	2, 3, 1, 0,
	3, 2, 1, 0,

	// rows 24-31 repeat rows 0-7 so the index needs no modulus
	0, 1, 2, 3,
	0, 1, 3, 2,
	0, 2, 1, 3,
	0, 3, 1, 2,
	0, 2, 3, 1,
	0, 3, 2, 1,
	1, 0, 2, 3,
	1, 0, 3, 2,
}

// blockPositionInvert maps a shuffle index to the row that undoes it.
var blockPositionInvert = [32]uint8{
	0, 1, 2, 4, 3, 5, 6, 7, 12, 18, 13, 19, 8, 10, 14, 20, 16, 22, 9, 11, 15, 21, 17, 23,
	0, 1, 2, 4, 3, 5, 6, 7,
}

// blockSwap exchanges the blocks at src and dst. Entries with src == dst are no-ops.
type blockSwap struct {
	src, dst uint8
}

// blockSwaps holds three in-place swaps per shuffle index. Applied in order they
// produce the same arrangement as the matching blockPosition row.
var blockSwaps = [96]blockSwap{
	{0, 0}, {1, 1}, {2, 2},
	{0, 0}, {1, 1}, {3, 2},
	{0, 0}, {2, 1}, {2, 2},
	{0, 0}, {3, 1}, {3, 2},
	{0, 0}, {2, 1}, {3, 2},
	{0, 0}, {3, 1}, {2, 2},
	{1, 0}, {1, 1}, {2, 2},
	{1, 0}, {1, 1}, {3, 2},
	{2, 0}, {2, 1}, {2, 2},
	{3, 0}, {3, 1}, {3, 2},
	{2, 0}, {2, 1}, {3, 2},
	{3, 0}, {3, 1}, {2, 2},
	{1, 0}, {2, 1}, {2, 2},
	{1, 0}, {3, 1}, {3, 2},
	{2, 0}, {1, 1}, {2, 2},
	{3, 0}, {1, 1}, {3, 2},
	{2, 0}, {3, 1}, {2, 2},
	{3, 0}, {2, 1}, {3, 2},
	{1, 0}, {2, 1}, {3, 2},
	{1, 0}, {3, 1}, {2, 2},
	{2, 0}, {1, 1}, {3, 2},
	{3, 0}, {1, 1}, {2, 2},
	{2, 0}, {3, 1}, {3, 2},
	{3, 0}, {2, 1}, {2, 2},

	// rows 24-31 repeat rows 0-7
	{0, 0}, {1, 1}, {2, 2},
	{0, 0}, {1, 1}, {3, 2},
	{0, 0}, {2, 1}, {2, 2},
	{0, 0}, {3, 1}, {3, 2},
	{0, 0}, {2, 1}, {3, 2},
	{0, 0}, {3, 1}, {2, 2},
	{1, 0}, {1, 1}, {2, 2},
	{1, 0}, {1, 1}, {3, 2},
}
