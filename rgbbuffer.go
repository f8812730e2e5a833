package qoig

// rgbBufState is the deferred-emit state machine for RGB-run buffering,
// per spec.md §4.3 and §9: at most one pending raw pixel, or a buffer of
// up to rgbRunMaxLen pixels of the same channel count.
type rgbBufState int

const (
	rgbNone rgbBufState = iota
	rgbPendingOne
	rgbBuffering
)

// rgbBuffer holds the raw-pixel buffering state for one Encoder. It is
// only used when EncodeConfig.Rawblocks is set.
type rgbBuffer struct {
	state   rgbBufState
	isRGBA  bool
	pending pixel
	pixels  []pixel
}

// active reports whether there is any pending or buffered raw pixel.
func (b *rgbBuffer) active() bool { return b.state != rgbNone }

// push integrates p into the buffer. isRGBA reports whether p needs its
// alpha byte written (its alpha differs from the immediately preceding
// pixel). A channel-count change or a full buffer flushes what came
// before first.
func (b *rgbBuffer) push(e *Encoder, p pixel, isRGBA bool) {
	switch b.state {
	case rgbNone:
		b.state = rgbPendingOne
		b.isRGBA = isRGBA
		b.pending = p

	case rgbPendingOne:
		if b.isRGBA != isRGBA {
			e.emitRawPixel(b.pending, b.isRGBA)
			b.isRGBA = isRGBA
			b.pending = p
			return
		}
		b.pixels = append(b.pixels[:0], b.pending, p)
		b.state = rgbBuffering

	case rgbBuffering:
		if b.isRGBA != isRGBA || len(b.pixels) >= rgbRunMaxLen {
			e.emitRGBRun(b.pixels, b.isRGBA)
			b.state = rgbPendingOne
			b.isRGBA = isRGBA
			b.pending = p
			b.pixels = b.pixels[:0]
			return
		}
		b.pixels = append(b.pixels, p)
	}
}

// flush emits whatever is currently buffered and resets to rgbNone.
// Called once at end of image; the encoder never needs to flush
// mid-stream for any reason push doesn't already handle.
func (b *rgbBuffer) flush(e *Encoder) {
	switch b.state {
	case rgbPendingOne:
		e.emitRawPixel(b.pending, b.isRGBA)
	case rgbBuffering:
		e.emitRGBRun(b.pixels, b.isRGBA)
	}
	b.state = rgbNone
	b.pixels = b.pixels[:0]
}
