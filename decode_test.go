package qoig

import (
	"bufio"
	"bytes"
	"testing"
)

func newTestDecoder(t *testing.T, longruns bool) *Decoder {
	t.Helper()
	h := header{width: 1, height: 1, channels: 4, colorspace: 0, clenIndex: 0, longruns: longruns}
	return &Decoder{
		r:       bufio.NewReader(bytes.NewReader(nil)),
		header:  h,
		cache:   newCache(h.clenIndex, h.longindex),
		current: defaultPixel,
	}
}

func TestDecodeRunShortForm(t *testing.T) {
	d := newTestDecoder(t, false)
	if err := d.decodeRun(tagRun | 5); err != nil {
		t.Fatalf("decodeRun: %v", err)
	}
	if d.run != 5 {
		t.Fatalf("d.run = %d, want 5", d.run)
	}
}

func TestDecodeRunLongFormSmallExtension(t *testing.T) {
	d := newTestDecoder(t, true)
	d.r = bufio.NewReader(bytes.NewReader([]byte{10}))
	if err := d.decodeRun(tagRun | runMaxCode); err != nil {
		t.Fatalf("decodeRun: %v", err)
	}
	want := runMaxCode + 10
	if d.run != want {
		t.Fatalf("d.run = %d, want %d", d.run, want)
	}
}

func TestDecodeRunLongFormLargeExtension(t *testing.T) {
	d := newTestDecoder(t, true)
	// e1=0xFF (>=128), s=0xFF -> additional = (0x7F<<8|0xFF)+128 = 32895
	d.r = bufio.NewReader(bytes.NewReader([]byte{0xFF, 0xFF}))
	if err := d.decodeRun(tagRun | runMaxCode); err != nil {
		t.Fatalf("decodeRun: %v", err)
	}
	want := runMaxCode + 32895
	if d.run != want {
		t.Fatalf("d.run = %d, want %d", d.run, want)
	}
	if want != longRunCap-1 {
		t.Fatalf("max long run extension should reach longRunCap-1 (%d), got %d", longRunCap-1, want)
	}
}

func TestDecodeRawBlockHeaderByte(t *testing.T) {
	d := newTestDecoder(t, false)
	d.header.rawblocks = true
	n := 50 // pixel count; header field is n-2
	payload := []byte{byte(n-2) & 0x7F}
	for i := 0; i < n; i++ {
		payload = append(payload, byte(i), byte(i), byte(i))
	}
	d.r = bufio.NewReader(bytes.NewReader(payload))
	if err := d.decodeRawBlock(); err != nil {
		t.Fatalf("decodeRawBlock: %v", err)
	}
	want := pixel{R: byte(n - 1), G: byte(n - 1), B: byte(n - 1), A: 255}
	if !d.current.equal(want) {
		t.Fatalf("after decodeRawBlock, current = %v, want %v", d.current, want)
	}
}

func TestDecodeRawBlockRGBAFlag(t *testing.T) {
	d := newTestDecoder(t, false)
	d.header.rawblocks = true
	payload := []byte{0x80 | byte(0), 1, 2, 3, 200, 4, 5, 6, 210}
	d.r = bufio.NewReader(bytes.NewReader(payload))
	if err := d.decodeRawBlock(); err != nil {
		t.Fatalf("decodeRawBlock: %v", err)
	}
	want := pixel{R: 4, G: 5, B: 6, A: 210}
	if !d.current.equal(want) {
		t.Fatalf("after decodeRawBlock, current = %v, want %v", d.current, want)
	}
}

func TestDecodePixelRunCounterFastPath(t *testing.T) {
	d := newTestDecoder(t, false)
	d.run = 3
	d.current = pixel{R: 9, G: 9, B: 9, A: 255}
	before := d.current
	if err := d.decodePixel(); err != nil {
		t.Fatalf("decodePixel: %v", err)
	}
	if d.run != 2 {
		t.Fatalf("d.run = %d after one fast-path consumption, want 2", d.run)
	}
	if !d.current.equal(before) {
		t.Fatalf("current pixel changed during run fast path: got %v, want %v", d.current, before)
	}
}
