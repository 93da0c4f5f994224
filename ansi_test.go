package img2braille

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countDirectives counts the style-set directives in a line,
// excluding resets.
func countDirectives(line string) int {
	return strings.Count(line, ESC+"[38;5;") + strings.Count(line, ESC+"[48;5;")
}

func TestEncodeRowUniformColor(t *testing.T) {
	t.Parallel()

	cells := []Cell{
		{Rune: 0x28ff, Color: 231},
		{Rune: 0x28ff, Color: 231},
		{Rune: 0x28ff, Color: 231},
	}
	line := EncodeRow(cells, false)

	assert.Equal(t, 1, countDirectives(line))
	assert.True(t, strings.HasPrefix(line, ansiForeground(231)))
	// Exactly one reset, at end of line, never mid-row.
	assert.Equal(t, 1, strings.Count(line, ansiReset))
	assert.True(t, strings.HasSuffix(line, ansiReset))
}

// The directive count equals the number of color transitions.
func TestEncodeRowTransitions(t *testing.T) {
	t.Parallel()

	cells := []Cell{
		{Rune: 0x2801, Color: 196},
		{Rune: 0x2802, Color: 196},
		{Rune: 0x2803, Color: 46},
		{Rune: 0x2804, Color: 46},
		{Rune: 0x2805, Color: 196},
	}
	line := EncodeRow(cells, false)
	assert.Equal(t, 3, countDirectives(line))
}

func TestEncodeRowBlankResets(t *testing.T) {
	t.Parallel()

	cells := []Cell{
		{Rune: 0x28ff, Color: 231},
		{Rune: ' ', Color: NoColor},
		{Rune: 0x28ff, Color: 231},
	}
	line := EncodeRow(cells, false)

	assert.Equal(t, 2, countDirectives(line))
	// One reset before the blank space, one at end of line.
	assert.Equal(t, 2, strings.Count(line, ansiReset))
	// The blank cell itself is a bare space between reset and re-set.
	assert.Contains(t, line, ansiReset+" "+ansiForeground(231))
}

func TestEncodeRowAllBlank(t *testing.T) {
	t.Parallel()

	cells := []Cell{
		{Rune: ' ', Color: NoColor},
		{Rune: ' ', Color: NoColor},
	}
	line := EncodeRow(cells, false)
	assert.Equal(t, "  ", line)
	assert.NotContains(t, line, ESC)
}

func TestEncodeRowBackgroundMode(t *testing.T) {
	t.Parallel()

	cells := []Cell{{Rune: 0x2801, Color: 202}}
	line := EncodeRow(cells, true)
	assert.Contains(t, line, ESC+"[48;5;202m")
	assert.NotContains(t, line, "[38;5;")
}

// Trailing blanks must not leave the row with an unnecessary final
// reset after the mid-row one already cleared the style.
func TestEncodeRowTrailingBlank(t *testing.T) {
	t.Parallel()

	cells := []Cell{
		{Rune: 0x28ff, Color: 231},
		{Rune: ' ', Color: NoColor},
	}
	line := EncodeRow(cells, false)
	assert.Equal(t, 1, strings.Count(line, ansiReset))
	assert.True(t, strings.HasSuffix(line, " "))
}

func TestEncodeNoStyleLeak(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	grid := [][]Cell{
		{{Rune: 0x2801, Color: 196}, {Rune: 0x2802, Color: 21}},
		{{Rune: ' ', Color: NoColor}},
		{{Rune: 0x28ff, Color: 231}},
	}
	out := r.Encode(grid)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	for i, line := range lines {
		open := countDirectives(line)
		resets := strings.Count(line, ansiReset)
		if open > 0 {
			assert.Greater(t, resets, 0, "line %d leaks a style", i)
			assert.True(t, strings.HasSuffix(line, ansiReset) ||
				strings.HasSuffix(line, " "), "line %d", i)
		}
	}
}
