package qoig

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Decoder turns a QOIG bitstream back into rows of pixels, per spec.md
// §4.4. A Decoder is single-use: build a fresh one per stream.
type Decoder struct {
	r      *bufio.Reader
	header header
	cache  *cache

	current pixel
	run     int
}

// NewDecoder parses the 14-byte header from r and builds a Decoder
// ready to produce pixel rows. The returned DecodedConfig reports the
// configuration recovered from the header, per spec.md §6.
func NewDecoder(r io.Reader) (*Decoder, DecodedConfig, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, DecodedConfig{}, newError(KindTruncatedStream, errors.Wrap(err, "reading header"))
	}
	h, err := decodeHeader(buf)
	if err != nil {
		return nil, DecodedConfig{}, err
	}
	d := &Decoder{
		r:       br,
		header:  h,
		cache:   newCache(h.clenIndex, h.longindex),
		current: defaultPixel,
	}
	return d, configFromHeader(h), nil
}

// Decode produces height rows of width pixels (at the header's channel
// count) and pushes each to sink, in order.
func (d *Decoder) Decode(sink RowSink) error {
	channels := int(d.header.channels)
	row := make([]byte, int(d.header.width)*channels)
	for y := uint32(0); y < d.header.height; y++ {
		for x := uint32(0); x < d.header.width; x++ {
			if err := d.decodePixel(); err != nil {
				return err
			}
			off := int(x) * channels
			row[off] = d.current.R
			row[off+1] = d.current.G
			row[off+2] = d.current.B
			if channels == 4 {
				row[off+3] = d.current.A
			}
		}
		if err := sink.PutRow(row); err != nil {
			return newError(KindSink, errors.Wrap(err, "row sink"))
		}
	}
	return nil
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, newError(KindTruncatedStream, errors.Wrap(err, "reading opcode byte"))
	}
	return b, nil
}

// decodePixel advances d.current to the next pixel in the stream,
// consuming whatever run/raw-block/opcode state is needed.
func (d *Decoder) decodePixel() error {
	if d.run > 0 {
		d.run--
		return nil
	}

	b, err := d.readByte()
	if err != nil {
		return err
	}

	switch {
	case b == opRGB:
		return d.decodeRawPixel(false)
	case b == opRGBA:
		return d.decodeRawPixel(true)
	case d.header.rawblocks && b == opRGBRun:
		return d.decodeRawBlock()
	}

	switch b & tagMask {
	case tagIndex:
		return d.decodeIndex(b)
	case tagDiff:
		d.applyDiff(b)
		d.writeExact()
		return nil
	case tagLuma:
		b2, err := d.readByte()
		if err != nil {
			return err
		}
		d.applyLuma(b, b2)
		d.writeExact()
		return nil
	default: // tagRun
		return d.decodeRun(b)
	}
}

// decodeIndex handles OP_INDEX and its long-cache escapes, per spec.md
// §4.1/§4.4.
func (d *Decoder) decodeIndex(b byte) error {
	i := int(b & argMask)
	c := d.cache

	if d.header.longindex && i == indexLongExact {
		j, err := d.readByte()
		if err != nil {
			return err
		}
		d.current = c.longExact[j]
		d.writeExact()
		return nil
	}
	if d.header.longindex && i == indexLongNear {
		j, err := d.readByte()
		if err != nil {
			return err
		}
		t := c.longNear[j]
		return d.applyOnTop(t)
	}

	t := c.primary[i]
	if i < c.clen {
		d.current = t
		d.writeExact()
		return nil
	}
	return d.applyOnTop(t)
}

// applyOnTop reads the mandatory following OP_DIFF or OP_LUMA opcode and
// applies it on top of the indexed reference pixel t.
func (d *Decoder) applyOnTop(t pixel) error {
	b, err := d.readByte()
	if err != nil {
		return err
	}
	switch b & tagMask {
	case tagDiff:
		d.current = t
		d.applyDiff(b)
	case tagLuma:
		b2, err := d.readByte()
		if err != nil {
			return err
		}
		d.current = t
		d.applyLuma(b, b2)
	default:
		return newError(KindTruncatedStream, errors.New("indexed opcode not followed by OP_DIFF/OP_LUMA"))
	}
	d.writeExact()
	return nil
}

func (d *Decoder) applyDiff(b byte) {
	dr := int8((b>>4)&3) - diffBias
	dg := int8((b>>2)&3) - diffBias
	db := int8(b&3) - diffBias
	d.current.R += uint8(dr)
	d.current.G += uint8(dg)
	d.current.B += uint8(db)
}

func (d *Decoder) applyLuma(b, b2 byte) {
	dg := int8(b&argMask) - lumaGBias
	drdg := int8((b2>>4)&0xF) - lumaRBBias
	dbdg := int8(b2&0xF) - lumaRBBias
	d.current.G += uint8(dg)
	d.current.R += uint8(dg + drdg)
	d.current.B += uint8(dg + dbdg)
}

func (d *Decoder) decodeRun(b byte) error {
	// extra is the number of additional pixels to emit after this one
	// (the field value already equals count-1 for a plain run).
	extra := int(b & argMask)
	if d.header.longruns && extra == runMaxCode {
		e1, err := d.readByte()
		if err != nil {
			return err
		}
		if e1 < 128 {
			extra += int(e1)
		} else {
			s, err := d.readByte()
			if err != nil {
				return err
			}
			extra += (int(e1&0x7F)<<8 | int(s)) + 128
		}
	}
	// d.current is unchanged (it already holds the repeated colour);
	// this opcode's own pixel is emitted by the caller, the remaining
	// extra pixels are emitted by the run-counter fast path.
	d.run = extra
	return nil
}

func (d *Decoder) decodeRawPixel(isRGBA bool) error {
	n := 3
	if isRGBA {
		n = 4
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return newError(KindTruncatedStream, errors.Wrap(err, "reading raw pixel"))
	}
	d.current.R, d.current.G, d.current.B = buf[0], buf[1], buf[2]
	if isRGBA {
		d.current.A = buf[3]
	}
	// Raw pixels write both the near-region slot and the exact slot,
	// mirroring the encoder's raw-fallback double write.
	d.writeNear()
	d.writeExact()
	return nil
}

func (d *Decoder) decodeRawBlock() error {
	h, err := d.readByte()
	if err != nil {
		return err
	}
	n := int(h&0x7F) + rgbRunMinLen
	isRGBA := h&0x80 != 0
	for i := 0; i < n; i++ {
		if err := d.decodeRawPixel(isRGBA); err != nil {
			return err
		}
	}
	return nil
}

// writeExact updates cache[H(current)], evicting the previous occupant
// into the long-exact cache, per spec.md §4.4.
func (d *Decoder) writeExact() {
	if d.cache.clen > 0 {
		d.cache.putExact(d.current)
	}
}

// writeNear updates cache[L(current)] (the primary near region),
// evicting the previous occupant into the long-near cache, mirroring
// the encoder's raw-fallback write.
func (d *Decoder) writeNear() {
	if d.cache.hasNearRegion() {
		d.cache.putNear(d.current)
	}
}
