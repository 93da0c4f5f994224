package img2braille

// brailleBase is the first codepoint of the Unicode braille block.
// The 256 glyphs at brailleBase ... brailleBase+255 are in bijection
// with the 8-bit dot patterns.
const brailleBase = 0x2800

// brightThreshold is the luminance above which a sample raises its
// dot. It is a fixed constant at the midpoint of the 8-bit range,
// never derived from image statistics.
const brightThreshold = 128.0

// blockSamples is the number of pixel samples covered by one cell.
const blockSamples = 8

// dotBits maps a block sample index (row-major within the 2x4 cell,
// px fastest) to its bit position in the dot pattern. Braille dots
// number the two columns' top three rows first and the bottom row
// last:
//
//	0 3
//	1 4
//	2 5
//	6 7
var dotBits = [blockSamples]uint8{0, 3, 1, 4, 2, 5, 6, 7}

// Sample is one optional pixel of a Block. Ok is false when the source
// image has no pixel at the sample's coordinate, which happens at the
// one-past-edge columns and rows of partially filled trailing blocks.
type Sample struct {
	Color RGB
	Ok    bool
}

// Block holds the eight samples of one 2x4 pixel cell in row-major
// order: index py*2+px for px in {0,1} and py in {0,1,2,3}.
type Block [blockSamples]Sample

// DotPattern is an 8-bit dot matrix value; bit k is set when the dot
// mapped to bit k is bright.
type DotPattern uint8

// Pattern quantizes the block to a dot pattern. A sample raises its
// dot when it is present and its BT.709 luminance strictly exceeds the
// brightness threshold. Absent samples leave their dots down, so an
// all-absent block yields pattern 0, the blank braille glyph.
func (b Block) Pattern() DotPattern {
	var p DotPattern
	for i, s := range b {
		if s.Ok && s.Color.Luminance() > brightThreshold {
			p |= 1 << dotBits[i]
		}
	}
	return p
}

// Rune returns the braille glyph encoding the pattern.
func (p DotPattern) Rune() rune {
	return brailleBase + rune(p)
}
