package img2braille

import (
	"fmt"
	"io"
	"strings"
)

// WriteColorTest writes the 256-color capability self test to w: the
// 16 system colors, the 6x6x6 color cube, the grayscale ramp, a row of
// braille glyphs, and a named-color accuracy table. Every swatch
// resets its own style so nothing leaks into later output.
func WriteColorTest(w io.Writer) {
	fmt.Fprintln(w, "256-color terminal support test")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "\n1. System colors (0-15):")
	for i := 0; i < 16; i++ {
		fmt.Fprintf(w, "%s[48;5;%dm   %s", ESC, i, ansiReset)
		if i == 7 || i == 15 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\n2. 216-color cube (16-231):")
	for g := 0; g < 6; g++ {
		for r := 0; r < 6; r++ {
			fmt.Fprintf(w, "R%dG%d: ", r, g)
			for b := 0; b < 6; b++ {
				code := 16 + 36*r + 6*g + b
				fmt.Fprintf(w, "%s[48;5;%dm  %s", ESC, code, ansiReset)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\n3. Grayscale ramp (232-255):")
	for i := 232; i < 256; i++ {
		fmt.Fprintf(w, "%s[48;5;%dm  %s", ESC, i, ansiReset)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\n4. Braille glyphs:")
	for i := 0; i < 32; i++ {
		fmt.Fprintf(w, "%c", rune(brailleBase+i))
		if i%16 == 15 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}

	fmt.Fprintln(w, "\n5. Color accuracy:")
	for _, c := range []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 0},
		{R: 255, G: 0, B: 255},
		{R: 0, G: 255, B: 255},
	} {
		idx := AnsiIndex(c)
		fmt.Fprintf(w, "%s RGB(%3d,%3d,%3d) -> %3d %s\n",
			ansiBackground(idx), c.R, c.G, c.B, idx, ansiReset)
	}
}
