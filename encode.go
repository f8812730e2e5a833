package qoig

import "github.com/pkg/errors"

// Encoder turns a sequence of RGBA rows into a QOIG bitstream, per
// spec.md §4.3. An Encoder is single-use: build a fresh one per image.
type Encoder struct {
	cfg        EncodeConfig
	width      uint32
	height     uint32
	channels   uint8
	colorspace uint8

	cache *cache
	last  pixel
	run   int
	buf   rgbBuffer

	out   []byte
	count int
	done  bool
}

// NewEncoder builds an Encoder for an image of the given dimensions.
// channels is the output channel count (3 or 4); colorspace is carried
// verbatim into the header.
func NewEncoder(width, height uint32, channels, colorspace uint8, cfg EncodeConfig) *Encoder {
	return &Encoder{
		cfg:        cfg,
		width:      width,
		height:     height,
		channels:   channels,
		colorspace: colorspace,
		cache:      newCache(cfg.ClenIndex, cfg.Longindex),
		last:       defaultPixel,
	}
}

// Encode drains src row by row and returns the complete bitstream. When
// cfg.Simulate is set, the returned slice is nil and only the byte count
// is meaningful (the tuning driver's mode of operation).
func (e *Encoder) Encode(src RowSource) ([]byte, int, error) {
	if !e.cfg.Simulate {
		e.out = encodeHeader(e.cfg.header(e.width, e.height, e.channels, e.colorspace))
		e.count = len(e.out)
	}
	for {
		row, status, err := src.NextRow()
		if err != nil {
			return nil, 0, newError(KindSource, errors.Wrap(err, "row source"))
		}
		if status == RowEnd {
			break
		}
		if err := e.encodeRow(row); err != nil {
			return nil, 0, err
		}
		if status == RowProducedLast {
			break
		}
		if e.capped() {
			return e.finish()
		}
	}
	e.flushRun()
	e.buf.flush(e)
	if !e.cfg.Simulate {
		e.out = append(e.out, footer[:]...)
	}
	e.count += len(footer)
	return e.finish()
}

func (e *Encoder) finish() ([]byte, int, error) {
	if e.cfg.Simulate {
		return nil, e.count, nil
	}
	return e.out, e.count, nil
}

func (e *Encoder) capped() bool {
	return e.cfg.Bytecap > 0 && e.count >= e.cfg.Bytecap
}

func (e *Encoder) encodeRow(row []byte) error {
	n := len(row) / 4
	for i := 0; i < n; i++ {
		p := pixel{R: row[4*i], G: row[4*i+1], B: row[4*i+2], A: row[4*i+3]}
		e.encodePixel(p)
	}
	return nil
}

// emit appends raw bytes to the bitstream (or, in simulate mode, only
// counts them).
func (e *Encoder) emit(bs ...byte) {
	e.count += len(bs)
	if !e.cfg.Simulate {
		e.out = append(e.out, bs...)
	}
}

func (e *Encoder) flushRun() {
	if e.run == 0 {
		return
	}
	n := e.run
	shortCap := runMax
	if e.cfg.Longruns {
		// When longruns is enabled, a run of exactly runMax is reserved
		// to mean "long-run extension follows" so the decoder can tell
		// the two apart unambiguously; it costs 1 extra byte here.
		shortCap = runMax - 1
	}
	if n <= shortCap {
		e.emit(tagRun | byte(n-1))
	} else {
		e.emit(tagRun | runMaxCode)
		extra := n - runMax
		if extra < 128 {
			e.emit(byte(extra))
		} else {
			extra -= 128
			e.emit(0x80|byte(extra>>8), byte(extra))
		}
	}
	e.run = 0
}

func (e *Encoder) maxRun() int {
	if e.cfg.Longruns {
		return longRunCap
	}
	return runMax
}

// encodePixel implements the priority-ordered opcode selection of
// spec.md §4.3, steps 1-11.
func (e *Encoder) encodePixel(p pixel) {
	// Step 1: run extension. A repeat that finds the counter saturated
	// flushes it and starts a new run, so a repeated pixel is never
	// encoded as a zero-delta OP_DIFF (byte 0x6A, which is OP_RGBRUN).
	if p.equal(e.last) {
		if e.run >= e.maxRun() {
			e.flushRun()
		}
		e.run++
		return
	}
	// Step 2: run flush.
	e.flushRun()

	c := e.cache

	// Step 3: exact primary hit.
	if c.clen > 0 {
		h := hashExact(p, c.clen)
		if c.primary[h].equal(p) {
			e.emit(tagIndex | byte(h))
			e.last = p
			return
		}

		// Exact miss: write H(p) now, evicting the old occupant into
		// the long-exact cache first (step 4's setup).
		var longHit bool
		var lh int
		if c.longindex {
			lh = hashLong(p)
			longHit = c.longExact[lh].equal(p)
		}
		c.putExact(p)

		// Step 4: exact long hit.
		if longHit {
			e.emit(tagIndex|indexLongExact, byte(lh))
			e.last = p
			return
		}
	}

	// Step 5: plain DIFF against the previous pixel.
	if smallDiff(p, e.last) {
		dr := int8(p.R-e.last.R) + diffBias
		dg := int8(p.G-e.last.G) + diffBias
		db := int8(p.B-e.last.B) + diffBias
		e.emit(tagDiff | byte(dr)<<4 | byte(dg)<<2 | byte(db))
		e.last = p
		return
	}

	// Step 6: plain LUMA against the previous pixel.
	if dg, drdg, dbdg, ok := lumaDiff(p, e.last); ok {
		e.emit(tagLuma|byte(dg+lumaGBias), byte(drdg+lumaRBBias)<<4|byte(dbdg+lumaRBBias))
		e.last = p
		return
	}

	if c.hasNearRegion() {
		m := c.localHash(p)
		ref := c.primary[m]
		best := ref
		bestIdx := m

		// Step 7: indexed DIFF in the near region.
		if smallDiff(p, ref) {
			e.emitIndexedDiff(m, p, ref)
			e.last = p
			return
		}

		// Step 8: search cache, tracking the nearest LUMA candidate.
		if e.cfg.Searchcache {
			bestDist := lumaDistance(p, ref)
			for j := c.clen; j < c.near; j++ {
				cand := c.primary[j]
				if smallDiff(p, cand) {
					e.emitIndexedDiff(j, p, cand)
					e.last = p
					return
				}
				if d := lumaDistance(p, cand); d < bestDist {
					bestDist = d
					best = cand
					bestIdx = j
				}
			}
		}

		// Step 9: indexed LUMA in the near region, against the best
		// candidate found (the ref slot itself, absent a search).
		if dg, drdg, dbdg, ok := lumaDiff(p, best); ok {
			e.emit(tagIndex|byte(bestIdx), tagLuma|byte(dg+lumaGBias), byte(drdg+lumaRBBias)<<4|byte(dbdg+lumaRBBias))
			e.last = p
			return
		}

		// Step 10: long-near DIFF / LUMA.
		if c.longindex && !e.suppressLongDiff(p) {
			lm := longLocalHash(p)
			lref := c.longNear[lm]
			lbest := lref
			lbestIdx := lm

			if smallDiff(p, lref) {
				e.emitIndexedDiff(indexLongNear, p, lref, byte(lm))
				e.last = p
				return
			}

			if e.cfg.Searchcache {
				bestDist := lumaDistance(p, lref)
				for j := 0; j < 256; j++ {
					cand := c.longNear[j]
					if smallDiff(p, cand) {
						e.emitIndexedDiff(indexLongNear, p, cand, byte(j))
						e.last = p
						return
					}
					if p.A != e.last.A {
						if d := lumaDistance(p, cand); d < bestDist {
							bestDist = d
							lbest = cand
							lbestIdx = j
						}
					}
				}
			}

			if p.A != e.last.A && !e.suppressLongLuma() {
				if dg, drdg, dbdg, ok := lumaDiff(p, lbest); ok {
					e.emit(tagIndex|indexLongNear, byte(lbestIdx), tagLuma|byte(dg+lumaGBias), byte(drdg+lumaRBBias)<<4|byte(dbdg+lumaRBBias))
					e.last = p
					return
				}
			}
		}
	}

	// Step 11: raw fallback.
	isRGBA := p.A != e.last.A
	if e.cfg.Rawblocks {
		e.buf.push(e, p, isRGBA)
	} else {
		e.emitRawPixel(p, isRGBA)
	}
	if c.hasNearRegion() {
		c.putNear(p)
	}
	e.last = p
}

// emitIndexedDiff emits OP_INDEX|idx followed by an OP_DIFF against ref,
// or (when extra is supplied) an OP_INDEX escape byte followed by the
// long-near slot number and the OP_DIFF.
func (e *Encoder) emitIndexedDiff(idx int, p, ref pixel, extra ...byte) {
	dr := int8(p.R-ref.R) + diffBias
	dg := int8(p.G-ref.G) + diffBias
	db := int8(p.B-ref.B) + diffBias
	diffByte := tagDiff | byte(dr)<<4 | byte(dg)<<2 | byte(db)
	if len(extra) > 0 {
		e.emit(tagIndex|byte(idx), extra[0], diffByte)
		return
	}
	e.emit(tagIndex|byte(idx), diffByte)
}

// suppressLongDiff implements the first of spec.md §4.3's "two subtle
// rules": a long-indexed DIFF is skipped while a same-alpha (OP_RGB
// kind) raw run is already buffering two or more pixels.
func (e *Encoder) suppressLongDiff(p pixel) bool {
	return e.buf.state == rgbBuffering && !e.buf.isRGBA && p.A == e.last.A
}

// suppressLongLuma implements the second subtle rule: a long-indexed
// LUMA is skipped while any raw run is buffering two or more pixels.
func (e *Encoder) suppressLongLuma() bool {
	return e.buf.state == rgbBuffering
}

func (e *Encoder) emitRawPixel(p pixel, isRGBA bool) {
	if isRGBA {
		e.emit(opRGBA, p.R, p.G, p.B, p.A)
	} else {
		e.emit(opRGB, p.R, p.G, p.B)
	}
}

// emitRGBRun emits a buffered run of 2..129 same-kind raw pixels as a
// single OP_RGBRUN block, per spec.md §4.1.
func (e *Encoder) emitRGBRun(pixels []pixel, isRGBA bool) {
	n := len(pixels)
	header := byte(n-2) & 0x7F
	if isRGBA {
		header |= 0x80
	}
	e.emit(opRGBRun, header)
	for _, p := range pixels {
		if isRGBA {
			e.emit(p.R, p.G, p.B, p.A)
		} else {
			e.emit(p.R, p.G, p.B)
		}
	}
}
