package qoig

// Opcode tags and literal bytes, per spec.md §4.1.
const (
	tagMask = 0xC0

	tagIndex = 0x00 // 00xxxxxx
	tagDiff  = 0x40 // 01xxxxxx
	tagLuma  = 0x80 // 10xxxxxx
	tagRun   = 0xC0 // 11xxxxxx

	argMask = 0x3F

	opRGBRun byte = 0x6A // tagDiff | 0x2A, disambiguated from OP_DIFF
	opRGB    byte = 0xFE
	opRGBA   byte = 0xFF

	diffBias = 2
	lumaGBias = 32
	lumaRBBias = 8

	// OP_INDEX escape values, only meaningful when longindex is enabled.
	indexLongExact = 62
	indexLongNear  = 63

	runMax       = 62  // 1-byte run range is count in [1, 62]
	runMaxCode   = 61  // OP_RUN argument for a saturated 62-count run
	longRunCap   = 32957
	rgbRunMinLen = 2
	rgbRunMaxLen = 129
)
