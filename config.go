package qoig

// EncodeConfig is the configuration accepted by NewEncoder, per spec.md
// §6. searchcache, simulate and bytecap are encoder-only and are not
// carried in the header; the rest round-trip through it.
type EncodeConfig struct {
	ClenIndex int // 0..30, index into clenTable

	Longruns  bool
	Longindex bool
	Rawblocks bool

	Searchcache bool
	Simulate    bool // suppress byte emission; count only

	// Bytecap, when non-zero, stops encoding once at least this many
	// bytes have been produced (or simulated). Used by the tuning
	// driver to cap the probed prefix; zero means unbounded.
	Bytecap int
}

// PlainQOIConfig is the configuration that reproduces baseline QOI
// output byte-for-byte: clen_index 30 (table value 64), every QOIG
// extension disabled.
func PlainQOIConfig() EncodeConfig {
	return EncodeConfig{ClenIndex: clenIndexPlainQOI}
}

func (c EncodeConfig) header(width, height uint32, channels, colorspace uint8) header {
	return header{
		width:      width,
		height:     height,
		channels:   channels,
		colorspace: colorspace,
		clenIndex:  effectiveClenIndex(c.ClenIndex, c.Longindex),
		longruns:   c.Longruns,
		longindex:  c.Longindex,
		rawblocks:  c.Rawblocks,
	}
}

// DecodedConfig reports the configuration recovered from a stream's
// header by Decoder, per spec.md §6.
type DecodedConfig struct {
	ClenIndex int
	Longruns  bool
	Longindex bool
	Rawblocks bool
	Width     uint32
	Height    uint32
	Channels  uint8
}

func configFromHeader(h header) DecodedConfig {
	return DecodedConfig{
		ClenIndex: h.clenIndex,
		Longruns:  h.longruns,
		Longindex: h.longindex,
		Rawblocks: h.rawblocks,
		Width:     h.width,
		Height:    h.height,
		Channels:  h.channels,
	}
}
