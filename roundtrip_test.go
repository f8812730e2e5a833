package qoig_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kriticalflare/qoig"
)

// encodeRGBA runs a full encode over an in-memory RGBA buffer and
// returns the resulting stream.
func encodeRGBA(t *testing.T, rgba []byte, width, height uint32, cfg qoig.EncodeConfig) []byte {
	t.Helper()
	enc := qoig.NewEncoder(width, height, 4, 0, cfg)
	src := qoig.NewSliceRowSource(rgba, width, height)
	out, _, err := enc.Encode(src)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return out
}

// decodeToRGBA fully decodes stream and widens it to 4-byte RGBA,
// regardless of the stream's declared channel count.
func decodeToRGBA(t *testing.T, stream []byte) ([]byte, qoig.DecodedConfig) {
	t.Helper()
	dec, cfg, err := qoig.NewDecoder(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	buf := make([]byte, int(cfg.Width)*int(cfg.Height)*int(cfg.Channels))
	sink := qoig.NewSliceRowSink(buf, cfg.Width, cfg.Channels)
	if err := dec.Decode(sink); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Channels == 3 {
		widened := make([]byte, int(cfg.Width)*int(cfg.Height)*4)
		for i := 0; i < int(cfg.Width)*int(cfg.Height); i++ {
			widened[4*i] = buf[3*i]
			widened[4*i+1] = buf[3*i+1]
			widened[4*i+2] = buf[3*i+2]
			widened[4*i+3] = 0xFF
		}
		return widened, cfg
	}
	return buf, cfg
}

func assertRoundTrip(t *testing.T, name string, rgba []byte, width, height uint32, cfg qoig.EncodeConfig) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		stream := encodeRGBA(t, rgba, width, height, cfg)
		got, decCfg := decodeToRGBA(t, stream)
		if decCfg.Width != width || decCfg.Height != height {
			t.Fatalf("decoded dimensions %dx%d, want %dx%d", decCfg.Width, decCfg.Height, width, height)
		}
		if diff := cmp.Diff(rgba, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func solidRGBA(width, height uint32, p [4]byte) []byte {
	buf := make([]byte, 4*width*height)
	for i := uint32(0); i < width*height; i++ {
		copy(buf[4*i:4*i+4], p[:])
	}
	return buf
}

func TestRoundTripOnePixelPlainQOI(t *testing.T) {
	rgba := solidRGBA(1, 1, [4]byte{255, 0, 0, 255})
	assertRoundTrip(t, "1x1 red", rgba, 1, 1, qoig.PlainQOIConfig())
}

func TestRoundTripIdenticalRun(t *testing.T) {
	rgba := solidRGBA(2, 1, [4]byte{10, 20, 30, 255})
	assertRoundTrip(t, "2x1 identical", rgba, 2, 1, qoig.PlainQOIConfig())
}

func TestRoundTripLongRunOfBlack(t *testing.T) {
	rgba := solidRGBA(1000, 1, [4]byte{0, 0, 0, 255})
	cfg := qoig.EncodeConfig{Longruns: true}
	assertRoundTrip(t, "1000 black pixels, longruns", rgba, 1000, 1, cfg)

	plain := qoig.EncodeConfig{}
	assertRoundTrip(t, "1000 black pixels, no longruns", rgba, 1000, 1, plain)
}

func TestRoundTripLumaGradient(t *testing.T) {
	width := uint32(64)
	rgba := make([]byte, 4*width)
	for x := uint32(0); x < width; x++ {
		v := byte(100 + x/4)
		rgba[4*x] = v
		rgba[4*x+1] = v + 1
		rgba[4*x+2] = v
		rgba[4*x+3] = 255
	}
	assertRoundTrip(t, "luma gradient row", rgba, width, 1, qoig.PlainQOIConfig())
}

func TestRoundTripAlphaSwitch(t *testing.T) {
	width := uint32(8)
	rgba := make([]byte, 4*width)
	for x := uint32(0); x < width; x++ {
		a := byte(255)
		if x%2 == 1 {
			a = 128
		}
		rgba[4*x] = 50
		rgba[4*x+1] = 60
		rgba[4*x+2] = 70
		rgba[4*x+3] = a
	}
	assertRoundTrip(t, "alternating alpha", rgba, width, 1, qoig.EncodeConfig{Rawblocks: true})
}

func TestRoundTripRandomImageUnderConfigs(t *testing.T) {
	width, height := uint32(64), uint32(64)
	rng := uint32(12345)
	next := func() byte {
		rng = rng*1664525 + 1013904223
		return byte(rng >> 24)
	}
	rgba := make([]byte, 4*width*height)
	for i := range rgba {
		if (i+1)%4 == 0 {
			// Bias alpha heavily towards opaque so RGB paths dominate,
			// matching a typical photographic source.
			if next()%8 == 0 {
				rgba[i] = next()
			} else {
				rgba[i] = 255
			}
			continue
		}
		rgba[i] = next()
	}

	configs := map[string]qoig.EncodeConfig{
		"plain":                 qoig.PlainQOIConfig(),
		"longruns":              {Longruns: true},
		"longindex":             {Longindex: true},
		"rawblocks":             {Rawblocks: true},
		"searchcache+longindex": {Searchcache: true, Longindex: true},
		"all extensions":        {Longruns: true, Longindex: true, Rawblocks: true, Searchcache: true},
	}
	for name, cfg := range configs {
		assertRoundTrip(t, name, rgba, width, height, cfg)
	}
}

func TestPlainQOIConfigMatchesPlainQOIHeaderByte(t *testing.T) {
	rgba := solidRGBA(1, 1, [4]byte{1, 2, 3, 255})
	stream := encodeRGBA(t, rgba, 1, 1, qoig.PlainQOIConfig())
	if stream[3] != 'f' {
		t.Fatalf("plain-QOI config byte = %#02x, want %#02x ('f')", stream[3], byte('f'))
	}
}
