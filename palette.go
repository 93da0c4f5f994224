package img2braille

import "math"

// PaletteIndex selects one of a terminal's 256 predefined colors:
// 16 system colors, a 6x6x6 color cube at 16-231, and a 24-step
// grayscale ramp at 232-255. The mapper only ever produces indices in
// [16, 255], so the zero value is free to act as the NoColor sentinel
// for blank cells.
type PaletteIndex uint8

// NoColor marks a cell with no visible pixel data. Blank cells render
// as a plain space with no style directive.
const NoColor PaletteIndex = 0

const (
	paletteBlack PaletteIndex = 16  // color cube black, used for near-black grays
	paletteWhite PaletteIndex = 231 // color cube white, used for near-white grays
	grayRampBase PaletteIndex = 232
)

// AnsiIndex converts an RGB color to its index in the fixed xterm
// 256-color palette. Achromatic colors map onto the grayscale ramp,
// with values below 8 snapped to palette black and above 248 to
// palette white. Chromatic colors are quantized per channel to one of
// six levels and addressed into the color cube.
//
// All rounding is math.Round, i.e. half away from zero, consistently
// across the ramp and the cube levels. The function is pure and total;
// callers memoize it through a ColorCache within one render pass.
func AnsiIndex(c RGB) PaletteIndex {
	if c.Achromatic() {
		v := c.R
		if v < 8 {
			return paletteBlack
		}
		if v > 248 {
			return paletteWhite
		}
		return grayRampBase + PaletteIndex(math.Round(float64(v-8)/247*24))
	}
	return 16 + PaletteIndex(36*cubeLevel(c.R)+6*cubeLevel(c.G)+cubeLevel(c.B))
}

// cubeLevel quantizes a channel value to one of the six color cube
// levels. Rounding half away from zero, clamped to [0, 5].
func cubeLevel(v uint8) uint8 {
	l := math.Round(float64(v) / 51.0)
	if l > 5 {
		l = 5
	}
	return uint8(l)
}

// cubeComponents holds the channel value a terminal displays for each
// of the six color cube levels.
var cubeComponents = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// systemColors is the conventional VGA palette for indices 0-15. The
// mapper never emits these, but the self test and the PNG preview need
// to display them.
var systemColors = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0xaa, 0x00, 0x00}, // red
	{0x00, 0xaa, 0x00}, // green
	{0xaa, 0x55, 0x00}, // yellow
	{0x00, 0x00, 0xaa}, // blue
	{0xaa, 0x00, 0xaa}, // magenta
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0xaa, 0xaa}, // white
	{0x55, 0x55, 0x55}, // bright black
	{0xff, 0x55, 0x55}, // bright red
	{0x55, 0xff, 0x55}, // bright green
	{0xff, 0xff, 0x55}, // bright yellow
	{0x55, 0x55, 0xff}, // bright blue
	{0xff, 0x55, 0xff}, // bright magenta
	{0x55, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// PaletteRGB returns the RGB value a 256-color terminal displays for
// the given palette index. It is the display-side inverse of AnsiIndex;
// note that AnsiIndex uses fixed bucket arithmetic rather than a
// nearest-neighbor search over these values, so the two are not an
// exact round trip.
func PaletteRGB(idx PaletteIndex) RGB {
	switch {
	case idx < 16:
		return systemColors[idx]
	case idx >= grayRampBase:
		// Grayscale ramp: indices 232-255 map to values 8, 18, ... 238.
		v := uint8(idx-grayRampBase)*10 + 8
		return RGB{R: v, G: v, B: v}
	default:
		c := uint8(idx - 16)
		return RGB{
			R: cubeComponents[c/36%6],
			G: cubeComponents[c/6%6],
			B: cubeComponents[c%6],
		}
	}
}

// ColorCache memoizes palette conversions for one render pass. Many
// blocks share averaged colors, so a render touches far fewer distinct
// triples than cells. The cache is owned by a single Compose call and
// must not be shared between concurrent renders.
type ColorCache struct {
	entries map[RGB]PaletteIndex
	hits    int
	misses  int
}

// NewColorCache creates an empty color-conversion cache.
func NewColorCache() *ColorCache {
	return &ColorCache{entries: make(map[RGB]PaletteIndex)}
}

// Lookup returns the palette index for c, converting and memoizing it
// on first sight.
func (cc *ColorCache) Lookup(c RGB) PaletteIndex {
	if idx, ok := cc.entries[c]; ok {
		cc.hits++
		return idx
	}
	idx := AnsiIndex(c)
	cc.entries[c] = idx
	cc.misses++
	return idx
}

// Stats returns the hit and miss counts accumulated by the cache.
func (cc *ColorCache) Stats() (hits, misses int) {
	return cc.hits, cc.misses
}
