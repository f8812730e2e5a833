package qoig

import "testing"

func TestTunePicksSmallestSimulatedSize(t *testing.T) {
	width, height := uint32(16), uint32(16)
	rgba := make([]byte, 4*width*height)
	for i := range rgba {
		rgba[i] = byte(i % 251)
	}
	rewind := func() RowSource {
		return NewSliceRowSource(rgba, width, height)
	}

	best, count := Tune(rewind, width, height, 4, EncodeConfig{}, len(rgba), NewNopLogger())
	if count < 0 {
		t.Fatalf("Tune returned no successful probe (count=%d)", count)
	}
	if best < 0 || best >= len(clenTable) {
		t.Fatalf("Tune returned out-of-range clen_index %d", best)
	}
	for _, idx := range probeOrder {
		cfg := EncodeConfig{ClenIndex: idx, Simulate: true, Bytecap: 10000}
		_, c, err := NewEncoder(width, height, 4, 0, cfg).Encode(rewind())
		if err != nil {
			t.Fatalf("simulating clen_index %d: %v", idx, err)
		}
		if c < count {
			t.Fatalf("clen_index %d simulates to %d bytes, fewer than Tune's choice %d (%d bytes)", idx, c, best, count)
		}
	}
}

func TestTuneSkipsProbeSkipPositionWhenLongindex(t *testing.T) {
	width, height := uint32(8), uint32(8)
	rgba := make([]byte, 4*width*height)
	rewind := func() RowSource {
		return NewSliceRowSource(rgba, width, height)
	}

	skipped := probeOrder[probeSkipPosition]
	base := EncodeConfig{Longindex: true}
	best, _ := Tune(rewind, width, height, 4, base, len(rgba), NewNopLogger())
	if best == skipped {
		// Not strictly an error by itself (another probe could tie on
		// the same clen_index only if it repeats, which it doesn't in
		// probeOrder), but catching it here flags a broken skip.
		for pos, idx := range probeOrder {
			if idx == skipped && pos != probeSkipPosition {
				return // the value also appears at a non-skipped position; fine
			}
		}
		t.Fatalf("Tune selected clen_index %d, which should only be reachable via the skipped probe position", best)
	}
}
