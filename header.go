package qoig

import "github.com/pkg/errors"

const headerSize = 14

var magicBytes = [3]byte{'q', 'o', 'i'}

// footer is the trailing marker every encode emits and every decode
// tolerates but does not require.
var footer = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// header is the 14-byte file header, decoded from or destined for the
// flag byte layout in SPEC_FULL.md (clen_index XOR 24, inverted
// longindex/rawblocks disable bits, longruns enable bit).
type header struct {
	width      uint32
	height     uint32
	channels   uint8
	colorspace uint8

	clenIndex int
	longruns  bool
	longindex bool
	rawblocks bool
}

const flagXORConstant = 24
const flagBitLongruns = 1 << 7
const flagBitLongindexDisabled = 1 << 6
const flagBitRawblocksDisabled = 1 << 5
const flagClenIndexMask = 0x1F

func (h header) flagByte() byte {
	var f byte
	if h.longruns {
		f |= flagBitLongruns
	}
	if !h.longindex {
		f |= flagBitLongindexDisabled
	}
	if !h.rawblocks {
		f |= flagBitRawblocksDisabled
	}
	f |= byte(h.clenIndex^flagXORConstant) & flagClenIndexMask
	return f
}

func parseFlagByte(f byte) (clenIndex int, longruns, longindex, rawblocks bool) {
	longruns = f&flagBitLongruns != 0
	longindex = f&flagBitLongindexDisabled == 0
	rawblocks = f&flagBitRawblocksDisabled == 0
	clenIndex = int(f&flagClenIndexMask) ^ flagXORConstant
	return
}

func encodeHeader(h header) []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:3], magicBytes[:])
	buf[3] = h.flagByte()
	putU32BE(buf[4:8], h.width)
	putU32BE(buf[8:12], h.height)
	buf[12] = h.channels
	buf[13] = h.colorspace
	return buf
}

// decodeHeader parses a 14-byte header and validates it per spec.md §7's
// malformed-header error kind: magic mismatch, channel count outside
// {3,4}, or an unusable clen_index.
func decodeHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, newError(KindTruncatedStream, errors.New("header: short read"))
	}
	if buf[0] != magicBytes[0] || buf[1] != magicBytes[1] || buf[2] != magicBytes[2] {
		return header{}, newError(KindMalformedHeader, errors.Errorf("header: bad magic %q", buf[0:3]))
	}
	clenIndex, longruns, longindex, rawblocks := parseFlagByte(buf[3])
	if clenIndex < 0 || clenIndex >= len(clenTable) {
		return header{}, newError(KindMalformedHeader, errors.Errorf("header: clen_index %d out of range", clenIndex))
	}
	h := header{
		width:      getU32BE(buf[4:8]),
		height:     getU32BE(buf[8:12]),
		channels:   buf[12],
		colorspace: buf[13],
		clenIndex:  clenIndex,
		longruns:   longruns,
		longindex:  longindex,
		rawblocks:  rawblocks,
	}
	if h.channels != 3 && h.channels != 4 {
		return header{}, newError(KindMalformedHeader, errors.Errorf("header: channels %d not in {3,4}", h.channels))
	}
	if h.width == 0 || h.height == 0 {
		return header{}, newError(KindMalformedHeader, errors.New("header: zero dimension"))
	}
	return h, nil
}

func putU32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func getU32BE(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
