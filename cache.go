package qoig

// clenTable is QOIG_CACHES from original_source/qoig.h: the 31 allowed
// exact-match region sizes, indexed by clen_index (0..30). The set avoids
// multiples of 3, 5 and 7 so the primary hash stays close to uniform.
var clenTable = [31]int{
	0, 1, 2, 4, 8, 11, 13, 16, 17, 19,
	22, 23, 26, 29, 31, 32, 34, 37, 38, 41,
	43, 44, 46, 47, 52, 53, 58, 59, 61, 62,
	64,
}

// clenIndexPlainQOI is the clen_index whose clenTable entry is 64 (a single
// unsplit 64-slot cache), used for the plain-QOI-compatible configuration.
// See SPEC_FULL.md, "Plain-QOI clen_index", for why this is 30 and not the
// 24 spec.md's prose names.
const clenIndexPlainQOI = 30

// clenIndexForced62 is the index QOIG_CACHES holds 62 at; longindex forces
// clen_index 30 (value 64) down to this when longindex is enabled, since
// indices 62 and 63 of the primary cache are reserved as escape codes.
const clenIndexForced62 = 29

// probeOrder is qoigconv.c's a236206: the order in which the tuning driver
// samples clen_index values. Probing position 6 (value 30 -> clen 64) is
// skipped whenever longindex is enabled.
var probeOrder = [31]int{
	23, 18, 26, 13, 28, 7, 30, 0, 22, 27,
	20, 25, 15, 29, 10, 24, 5, 19, 16, 12,
	8, 3, 21, 17, 14, 11, 9, 6, 4, 2,
	1,
}

const probeSkipPosition = 6

// effectiveClenIndex applies the longindex-forces-62 rule from spec.md §3.
func effectiveClenIndex(clenIndex int, longindex bool) int {
	if longindex && clenIndex == clenIndexPlainQOI {
		return clenIndexForced62
	}
	return clenIndex
}

// cache holds the three fixed-size caches a single encode/decode sweep
// owns: the primary split cache and, when longindex is enabled, the two
// 256-slot overflow caches. No reference to a cache escapes the codec
// instance that owns it.
type cache struct {
	clen      int // exact-match region size
	near      int // near-match region upper bound (exclusive)
	longindex bool

	primary   [64]pixel
	longExact [256]pixel // indexed by M(p); overflow for the primary exact region
	longNear  [256]pixel // indexed by L(p, 0, 256); overflow for the primary near region
}

// newCache builds a fresh cache for one image sweep, seeding the long
// caches from the default palette when longindex is enabled and priming
// the exact-region slot for the initial current pixel, the way the
// reference encoder/decoder does before the first pixel is processed.
func newCache(clenIndex int, longindex bool) *cache {
	clenIndex = effectiveClenIndex(clenIndex, longindex)
	clen := clenTable[clenIndex]

	c := &cache{
		clen:      clen,
		near:      64 - 2*boolToInt(longindex),
		longindex: longindex,
	}
	if longindex {
		c.longExact = seedLongExactPalette
		c.longNear = seedLongNearPalette
	}
	if clen > 0 {
		h := hashExact(defaultPixel, clen)
		c.primary[h] = defaultPixel
		if longindex {
			c.longExact[hashLong(defaultPixel)] = defaultPixel
		}
	}
	return c
}

// hasNearRegion reports whether the primary cache has a near-match region
// at all (false when clen == 64, or clen == near under longindex).
func (c *cache) hasNearRegion() bool {
	return c.near-c.clen > 0
}

// localHash computes L(p) against this cache's near region bounds.
func (c *cache) localHash(p pixel) int {
	return hashLocal(p, c.clen, c.near)
}

// longLocalHash computes L(p) against the full 0..256 long-near range.
func longLocalHash(p pixel) int {
	return hashLocal(p, 0, 256)
}

// putExact overwrites the primary cache's H(p) slot with p. When longindex
// is enabled, the slot's previous occupant is evicted into the long-exact
// cache at its own M hash first (the long-exact cache is an overflow for
// the primary exact region, spec.md §4.3 step 4). Returns H(p).
func (c *cache) putExact(p pixel) int {
	h := hashExact(p, c.clen)
	if c.longindex {
		prev := c.primary[h]
		if !prev.equal(p) {
			c.longExact[hashLong(prev)] = prev
		}
	}
	c.primary[h] = p
	return h
}

// putNear overwrites the primary cache's L(p) slot (the near-match
// region) with p. When longindex is enabled, the slot's previous occupant
// is evicted into the long-near cache at its own 0..256 local hash first.
// Returns L(p). Only called for raw (uncompressed) pixels, per spec.md
// §4.3's "Cache writes" and §4.4's decoder mirror.
func (c *cache) putNear(p pixel) int {
	m := c.localHash(p)
	if c.longindex {
		prev := c.primary[m]
		if !prev.equal(p) {
			c.longNear[longLocalHash(prev)] = prev
		}
	}
	c.primary[m] = p
	return m
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
