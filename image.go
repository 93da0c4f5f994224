package img2braille

import (
	"fmt"

	"github.com/wbrown/img2braille/imageutil"
)

// SaveCellsToPNG renders a composed cell grid to a PNG file, drawing
// each raised dot as a scale-by-scale square in the cell's palette
// color on a black background. Useful for inspecting a render without
// a 256-color terminal.
func SaveCellsToPNG(grid [][]Cell, filename string, scale int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return fmt.Errorf("empty cell grid")
	}
	if scale < 1 {
		scale = 1
	}

	width := len(grid[0]) * 2 * scale
	height := len(grid) * 4 * scale
	img := imageutil.NewRGBAImage(width, height)

	for charY, row := range grid {
		for charX, cell := range row {
			if cell.Color == NoColor {
				continue
			}
			if cell.Rune < brailleBase || cell.Rune > brailleBase+255 {
				continue
			}
			drawCellDots(img, charX, charY,
				DotPattern(cell.Rune-brailleBase),
				PaletteRGB(cell.Color), scale)
		}
	}
	return imageutil.SavePNG(img, filename)
}

// drawCellDots fills the raised dots of one braille cell.
func drawCellDots(img *imageutil.RGBAImage, charX, charY int, pattern DotPattern, c RGB, scale int) {
	for i, bit := range dotBits {
		if pattern&(1<<bit) == 0 {
			continue
		}
		px, py := i%2, i/2
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetRGB(
					(charX*2+px)*scale+dx,
					(charY*4+py)*scale+dy,
					imageutil.RGB{R: c.R, G: c.G, B: c.B})
			}
		}
	}
}
