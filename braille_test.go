package img2braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The dot permutation is a fixed addressing convention; test it
// independently of any brightness logic.
func TestDotBitsPermutation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [blockSamples]uint8{0, 3, 1, 4, 2, 5, 6, 7}, dotBits)

	var seen [blockSamples]bool
	for _, bit := range dotBits {
		assert.Less(t, bit, uint8(blockSamples))
		assert.False(t, seen[bit], "bit %d mapped twice", bit)
		seen[bit] = true
	}
}

func TestPatternEmptyBlock(t *testing.T) {
	t.Parallel()

	var b Block
	assert.Equal(t, DotPattern(0), b.Pattern())
	assert.Equal(t, rune(0x2800), b.Pattern().Rune())
}

func TestPatternAllBright(t *testing.T) {
	t.Parallel()

	var b Block
	for i := range b {
		b[i] = Sample{Color: RGB{255, 255, 255}, Ok: true}
	}
	assert.Equal(t, DotPattern(255), b.Pattern())
	assert.Equal(t, rune(0x28ff), b.Pattern().Rune())
}

func TestPatternSinglePositions(t *testing.T) {
	t.Parallel()

	for i := 0; i < blockSamples; i++ {
		var b Block
		b[i] = Sample{Color: RGB{255, 255, 255}, Ok: true}
		assert.Equal(t, DotPattern(1)<<dotBits[i], b.Pattern(), "sample %d", i)
	}

	// Sample 6 is the bottom-left dot, the first one outside the
	// column-interleaved top rows.
	var b Block
	b[6] = Sample{Color: RGB{255, 255, 255}, Ok: true}
	assert.Equal(t, DotPattern(64), b.Pattern())
}

// The threshold is strict: luminance exactly 128 leaves the dot down.
func TestPatternThreshold(t *testing.T) {
	t.Parallel()

	var b Block
	b[0] = Sample{Color: RGB{128, 128, 128}, Ok: true}
	assert.Equal(t, DotPattern(0), b.Pattern())

	b[0] = Sample{Color: RGB{129, 129, 129}, Ok: true}
	assert.Equal(t, DotPattern(1), b.Pattern())
}

func TestPatternDarkSamples(t *testing.T) {
	t.Parallel()

	var b Block
	for i := range b {
		b[i] = Sample{Color: RGB{30, 30, 30}, Ok: true}
	}
	assert.Equal(t, DotPattern(0), b.Pattern())
}

// A bright green sample passes the threshold on luma alone while an
// equally "loud" blue one does not; the BT.709 weights decide.
func TestPatternLumaWeights(t *testing.T) {
	t.Parallel()

	var b Block
	b[0] = Sample{Color: RGB{0, 255, 0}, Ok: true}
	assert.Equal(t, DotPattern(1), b.Pattern())

	b[0] = Sample{Color: RGB{0, 0, 255}, Ok: true}
	assert.Equal(t, DotPattern(0), b.Pattern())
}

// Four white pixels in the top two rows of a block raise dots 0, 3, 1
// and 4, giving pattern 27.
func TestPatternWhiteQuad(t *testing.T) {
	t.Parallel()

	var b Block
	for i := 0; i < 4; i++ {
		b[i] = Sample{Color: RGB{255, 255, 255}, Ok: true}
	}
	assert.Equal(t, DotPattern(27), b.Pattern())
	assert.Equal(t, rune(0x2800+27), b.Pattern().Rune())
}
