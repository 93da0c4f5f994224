package img2braille

import (
	"fmt"
	"strings"
)

const (
	// ESC is the escape character opening every style directive.
	ESC = ""

	// ansiReset clears any active color.
	ansiReset = ESC + "[0m"
)

// ansiForeground returns the 256-color foreground directive for idx.
func ansiForeground(idx PaletteIndex) string {
	return fmt.Sprintf("%s[38;5;%dm", ESC, idx)
}

// ansiBackground returns the 256-color background directive for idx.
func ansiBackground(idx PaletteIndex) string {
	return fmt.Sprintf("%s[48;5;%dm", ESC, idx)
}

// Cell is one character position of the output grid: a glyph and the
// palette color it is drawn with. Color is NoColor for blank cells,
// which carry a space rune and no style.
type Cell struct {
	Rune  rune
	Color PaletteIndex
}

// EncodeRow serializes one row of cells into a styled line, emitting a
// color directive only when the active color changes from the previous
// cell. A blank cell resets an active style before its space is
// written, and a style still active at end of line is reset so it
// cannot leak into subsequent output. The number of directives in the
// line therefore equals the number of color transitions in the row.
//
// When useBackground is true the cells are painted with background
// directives instead of foreground ones.
func EncodeRow(cells []Cell, useBackground bool) string {
	var line strings.Builder
	last := NoColor
	for _, cell := range cells {
		switch {
		case cell.Color != NoColor && cell.Color != last:
			if useBackground {
				line.WriteString(ansiBackground(cell.Color))
			} else {
				line.WriteString(ansiForeground(cell.Color))
			}
			last = cell.Color
		case cell.Color == NoColor && last != NoColor:
			line.WriteString(ansiReset)
			last = NoColor
		}
		line.WriteRune(cell.Rune)
	}
	if last != NoColor {
		line.WriteString(ansiReset)
	}
	return line.String()
}
