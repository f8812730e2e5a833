package qoig

// pixel is a 4-byte RGBA colour value in logical red, green, blue, alpha
// order.
type pixel struct {
	R, G, B, A uint8
}

// defaultPixel is the decoder/encoder's initial "previous pixel".
var defaultPixel = pixel{R: 0, G: 0, B: 0, A: 255}

func (p pixel) equal(o pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B && p.A == o.A
}

// hashExact is QOI's H(p) hash, generalized to an arbitrary modulus (the
// exact-match region size). All arithmetic is unsigned 32-bit.
func hashExact(p pixel, clen int) int {
	h := uint32(3)*uint32(p.R) + uint32(5)*uint32(p.G) + uint32(7)*uint32(p.B) + uint32(11)*uint32(p.A)
	return int(h % uint32(clen))
}

// hashLong is M(p), the long-exact cache's hash over a fixed 256-slot table.
func hashLong(p pixel) int {
	h := uint32(23)*uint32(p.R) + uint32(29)*uint32(p.G) + uint32(59)*uint32(p.B) + uint32(197)*uint32(p.A)
	return int(h % 256)
}

// hashLocal is L(p), the locality hash used by the near-match region and by
// the long-near cache. lo and hi bound the addressable slot range; the
// caller is responsible for ensuring hi > lo.
func hashLocal(p pixel, lo, hi int) int {
	r := (uint32(p.R) + 8) >> 3
	g := (uint32(p.G) + 8) >> 3
	b := (uint32(p.B) + 8) >> 3
	span := uint32(hi - lo)
	return lo + int((r*37+g*59+b*67)%span)
}

// smallDiff reports whether cur can be expressed as an OP_DIFF relative to
// ref: each of dr, dg, db in [-2, 1] and alpha unchanged.
func smallDiff(cur, ref pixel) bool {
	if cur.A != ref.A {
		return false
	}
	dr := int8(cur.R - ref.R)
	dg := int8(cur.G - ref.G)
	db := int8(cur.B - ref.B)
	return dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1
}

// lumaDiff reports whether cur can be expressed as an OP_LUMA relative to
// ref: dg in [-32, 31], dr-dg and db-dg each in [-8, 7], alpha unchanged.
func lumaDiff(cur, ref pixel) (dg, drdg, dbdg int8, ok bool) {
	if cur.A != ref.A {
		return 0, 0, 0, false
	}
	dg = int8(cur.G - ref.G)
	drdg = int8(cur.R-ref.R) - dg
	dbdg = int8(cur.B-ref.B) - dg
	ok = dg >= -32 && dg <= 31 && drdg >= -8 && drdg <= 7 && dbdg >= -8 && dbdg <= 7
	return
}

// lumaDistance is a coarse channel-distance metric used only to pick the
// nearest near-region candidate during a search-cache scan; it has no
// bearing on whether a candidate is actually LUMA-encodable (lumaDiff
// re-validates that separately). See the "near-region search bug" note in
// SPEC_FULL.md: the original C implementation folded the loop index into
// this distance, which produced a different (and seemingly unintended)
// ranking.
func lumaDistance(cur, ref pixel) int {
	dg := int(cur.G) - int(ref.G)
	drdg := int(cur.R) - int(ref.R) - dg
	dbdg := int(cur.B) - int(ref.B) - dg
	return abs(dg) + abs(drdg) + abs(dbdg)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
