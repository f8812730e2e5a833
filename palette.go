package qoig

// Seed palettes for the long-exact and long-near caches, decoded from the
// big-endian literal tables in original_source/qoig.h's default_colors_be
// and default_colors2_be. Each uint32 packs a pixel as 0xRRGGBBAA; the
// little-endian tables in the original are redundant here because pixel
// has explicit R/G/B/A fields rather than a raw-word union (see
// SPEC_FULL.md, "Seed palette endianness"). This data is part of the wire
// format: do not regenerate it from a different source.

func unpackSeed(v uint32) pixel {
	return pixel{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

var seedExactPalette = [256]uint32{
	0x0000ffff, 0xffcc33ff, 0x003300ff, 0x66cc66ff, 0x993399ff, 0xffccffff, 0x0033ccff, 0xffff00ff,
	0x838383ff, 0x66ff33ff, 0x996666ff, 0xffffccff, 0x006699ff, 0x66ffffff, 0xddddddff, 0x6c6c6cff,
	0x999933ff, 0xcc0066ff, 0x009966ff, 0x330099ff, 0x9999ffff, 0xc6c6c6ff, 0x99cc00ff, 0xcc3333ff,
	0x00cc33ff, 0x333366ff, 0x99ccccff, 0xcc33ffff, 0x00ccffff, 0xcc6600ff, 0x00ff00ff, 0x336633ff,
	0x99ff99ff, 0xcc66ccff, 0x00ffccff, 0x3366ffff, 0xff0000ff, 0x339900ff, 0x660033ff, 0xcc9999ff,
	0xff00ccff, 0x3399ccff, 0x6600ffff, 0x101010ff, 0x663300ff, 0xcccc66ff, 0xff3399ff, 0x33cc99ff,
	0x6633ccff, 0x6a6a6aff, 0xf9f9f9ff, 0xccff33ff, 0xff6666ff, 0x33ff66ff, 0x666699ff, 0xccffffff,
	0x535353ff, 0xe2e2e2ff, 0xff9933ff, 0x000000ff, 0x669966ff, 0x990099ff, 0xff99ffff, 0x0000ccff,
	0xffcc00ff, 0x5a5a5aff, 0x66cc33ff, 0x993366ff, 0xffccccff, 0x003399ff, 0x66ccffff, 0xb4b4b4ff,
	0x66ff00ff, 0x996633ff, 0xffff99ff, 0x006666ff, 0x66ffccff, 0x9966ffff, 0x9d9d9dff, 0x999900ff,
	0xcc0033ff, 0x009933ff, 0x330066ff, 0x9999ccff, 0xcc00ffff, 0x0099ffff, 0xcc3300ff, 0x00cc00ff,
	0x333333ff, 0x99cc99ff, 0xcc33ccff, 0x00ccccff, 0x3333ffff, 0xfefefeff, 0x336600ff, 0x99ff66ff,
	0xcc6699ff, 0x00ff99ff, 0x3366ccff, 0x585858ff, 0xe7e7e7ff, 0x660000ff, 0xcc9966ff, 0xff0099ff,
	0x339999ff, 0x6600ccff, 0x414141ff, 0xd0d0d0ff, 0xcccc33ff, 0xff3366ff, 0x33cc66ff, 0x663399ff,
	0xccccffff, 0x2a2a2aff, 0xccff00ff, 0xff6633ff, 0x33ff33ff, 0x666666ff, 0xccffccff, 0xff66ffff,
	0x33ffffff, 0xff9900ff, 0x313131ff, 0x669933ff, 0x990066ff, 0xff99ccff, 0x000099ff, 0x6699ffff,
	0x8b8b8bff, 0x66cc00ff, 0x993333ff, 0xffcc99ff, 0x003366ff, 0x66ccccff, 0x9933ffff, 0x747474ff,
	0x996600ff, 0xffff66ff, 0x006633ff, 0x66ff99ff, 0x9966ccff, 0xcececeff, 0x0066ffff, 0xcc0000ff,
	0x009900ff, 0x330033ff, 0x999999ff, 0xcc00ccff, 0x0099ccff, 0x3300ffff, 0xd5d5d5ff, 0x333300ff,
	0x99cc66ff, 0xcc3399ff, 0x00cc99ff, 0x3333ccff, 0x2f2f2fff, 0xbebebeff, 0x99ff33ff, 0xcc6666ff,
	0x00ff66ff, 0x336699ff, 0x99ffffff, 0x181818ff, 0xa7a7a7ff, 0xcc9933ff, 0xff0066ff, 0x339966ff,
	0x660099ff, 0xcc99ffff, 0x010101ff, 0xcccc00ff, 0xff3333ff, 0x33cc33ff, 0x663366ff, 0xccccccff,
	0xff33ffff, 0x33ccffff, 0xff6600ff, 0x33ff00ff, 0x666633ff, 0xccff99ff, 0xff66ccff, 0x33ffccff,
	0x6666ffff, 0x626262ff, 0x669900ff, 0x990033ff, 0xff9999ff, 0x000066ff, 0x6699ccff, 0x9900ffff,
	0x4b4b4bff, 0x993300ff, 0xffcc66ff, 0x003333ff, 0x66cc99ff, 0x9933ccff, 0xa5a5a5ff, 0x0033ffff,
	0xffff33ff, 0x006600ff, 0x66ff66ff, 0x996699ff, 0xffffffff, 0x0066ccff, 0x1d1d1dff, 0xacacacff,
	0x330000ff, 0x999966ff, 0xcc0099ff, 0x009999ff, 0x3300ccff, 0x060606ff, 0x959595ff, 0x99cc33ff,
	0xcc3366ff, 0x00cc66ff, 0x333399ff, 0x99ccffff, 0xefefefff, 0x99ff00ff, 0xcc6633ff, 0x00ff33ff,
	0x336666ff, 0x99ffccff, 0xcc66ffff, 0x00ffffff, 0xcc9900ff, 0xff0033ff, 0x339933ff, 0x660066ff,
	0xcc99ccff, 0xff00ffff, 0x3399ffff, 0xff3300ff, 0x33cc00ff, 0x663333ff, 0xcccc99ff, 0xff33ccff,
	0x33ccccff, 0x6633ffff, 0x393939ff, 0x666600ff, 0xccff66ff, 0xff6699ff, 0x33ff99ff, 0x6666ccff,
	0x939393ff, 0x222222ff, 0x990000ff, 0xff9966ff, 0x000033ff, 0x669999ff, 0x9900ccff, 0x7c7c7cff,
}
var seedNearPalette = [256]uint32{
	0x3333ffff, 0x545454ff, 0xacacacff, 0xcccc00ff, 0xcc6600ff, 0xffcc66ff, 0xff6666ff, 0x333366ff,
	0x585858ff, 0x636363ff, 0xff99ccff, 0xff33ccff, 0x3300ccff, 0x8f8f8fff, 0x9a9a9aff, 0x66ffccff,
	0xb0b0b0ff, 0xff9933ff, 0xff3333ff, 0x330033ff, 0xdcdcdcff, 0xe7e7e7ff, 0x66ff33ff, 0xff0099ff,
	0x3c3c3cff, 0x99ff33ff, 0xecececff, 0x66cc99ff, 0x666699ff, 0x3f3f3fff, 0xff0000ff, 0x996699ff,
	0xccccffff, 0xcc66ffff, 0x66cc00ff, 0x666600ff, 0x8c8c8cff, 0x99cc00ff, 0x996600ff, 0xcccc66ff,
	0xcc6666ff, 0x003366ff, 0xcececeff, 0xd9d9d9ff, 0xcc99ccff, 0xcc33ccff, 0x0000ccff, 0x242424ff,
	0x7c7c7cff, 0x33ffccff, 0x262626ff, 0xcc9933ff, 0xcc3333ff, 0x000033ff, 0x525252ff, 0x5d5d5dff,
	0x33ff33ff, 0xcc0099ff, 0x7e7e7eff, 0xff00ffff, 0xffff99ff, 0x33cc99ff, 0x336699ff, 0x66ccffff,
	0xcc0000ff, 0xcbcbcbff, 0xff0066ff, 0xffff00ff, 0x33cc00ff, 0x336600ff, 0x66cc66ff, 0x666666ff,
	0xbcbcbcff, 0x99cc66ff, 0x996666ff, 0x6699ccff, 0x6633ccff, 0x4f4f4fff, 0x9999ccff, 0x9933ccff,
	0x707070ff, 0x7b7b7bff, 0x669933ff, 0x663333ff, 0x9c9c9cff, 0x999933ff, 0x993333ff, 0xbdbdbdff,
	0x660099ff, 0xd3d3d3ff, 0x00ff33ff, 0x990099ff, 0xf4f4f4ff, 0xcc00ffff, 0xccff99ff, 0x660000ff,
	0xffffffff, 0x33ccffff, 0x990000ff, 0x414141ff, 0xcc0066ff, 0xccff00ff, 0x00cc00ff, 0xffff66ff,
	0x33cc66ff, 0x336666ff, 0x8e8e8eff, 0x999999ff, 0xffccccff, 0xff66ccff, 0x3333ccff, 0xc5c5c5ff,
	0xd0d0d0ff, 0xdbdbdbff, 0xe6e6e6ff, 0xffcc33ff, 0xff6633ff, 0x333333ff, 0x8c8c8cff, 0xe4e4e4ff,
	0xff9999ff, 0xff3399ff, 0x330099ff, 0x494949ff, 0x6600ffff, 0x66ff99ff, 0x6a6a6aff, 0xff9900ff,
	0xff3300ff, 0x330000ff, 0xccffffff, 0x660066ff, 0x66ff00ff, 0xb7b7b7ff, 0x990066ff, 0x99ff00ff,
	0xd8d8d8ff, 0xccff66ff, 0x00cc66ff, 0x006666ff, 0x1c1c1cff, 0x747474ff, 0xccccccff, 0xcc66ccff,
	0x0033ccff, 0x3b3b3bff, 0x464646ff, 0x515151ff, 0x5c5c5cff, 0xcccc33ff, 0xcc6633ff, 0x003333ff,
	0x888888ff, 0x939393ff, 0xcc9999ff, 0xcc3399ff, 0xff99ffff, 0xff33ffff, 0x3300ffff, 0x33ff99ff,
	0xe0e0e0ff, 0xcc9900ff, 0xcc3300ff, 0xff9966ff, 0xff3366ff, 0x330066ff, 0x33ff00ff, 0x2d2d2dff,
	0x66ff66ff, 0xff00ccff, 0x4e4e4eff, 0x99ff66ff, 0x646464ff, 0x66ccccff, 0x6666ccff, 0x858585ff,
	0xff0033ff, 0x9966ccff, 0xa6a6a6ff, 0xb1b1b1ff, 0x66cc33ff, 0x666633ff, 0xd2d2d2ff, 0x99cc33ff,
	0x996633ff, 0x669999ff, 0x663399ff, 0x444444ff, 0x999999ff, 0x993399ff, 0xcc99ffff, 0xcc33ffff,
	0x669900ff, 0x663300ff, 0x565656ff, 0x999900ff, 0x993300ff, 0xcc9966ff, 0xcc3366ff, 0x000066ff,
	0x00ff00ff, 0xa3a3a3ff, 0x33ff66ff, 0xcc00ccff, 0xc4c4c4ff, 0xcfcfcfff, 0xffffccff, 0x33ccccff,
	0x3366ccff, 0xfbfbfbff, 0xcc0033ff, 0x848484ff, 0xdcdcdcff, 0xffff33ff, 0x33cc33ff, 0x336633ff,
	0x484848ff, 0x535353ff, 0xffcc99ff, 0xff6699ff, 0x333399ff, 0x6699ffff, 0x6633ffff, 0x959595ff,
	0x9999ffff, 0xffcc00ff, 0xff6600ff, 0x333300ff, 0x669966ff, 0x663366ff, 0xe2e2e2ff, 0x999966ff,
	0x993366ff, 0x141414ff, 0x6600ccff, 0xc4c4c4ff, 0x00ff66ff, 0x9900ccff, 0x3a3a3aff, 0x454545ff,
	0xccffccff, 0x660033ff, 0x0066ccff, 0x717171ff, 0x990033ff, 0x878787ff, 0x929292ff, 0xccff33ff,
	0x00cc33ff, 0x006633ff, 0xbebebeff, 0xc9c9c9ff, 0xcccc99ff, 0xcc6699ff, 0xffccffff, 0xff66ffff,
}

func seedPixels(table [256]uint32) [256]pixel {
	var out [256]pixel
	for i, v := range table {
		out[i] = unpackSeed(v)
	}
	return out
}

var (
	seedLongExactPalette = seedPixels(seedExactPalette)
	seedLongNearPalette  = seedPixels(seedNearPalette)
)
