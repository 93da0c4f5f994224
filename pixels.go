package img2braille

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoPixels is returned when a pixel stream parses cleanly but
// contains no usable samples. It is distinct from a decode failure so
// callers can tell an empty result from a broken tool.
var ErrNoPixels = errors.New("no pixel samples in input")

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// PixelMap associates pixel coordinates with their colors. Coordinates
// not present lie outside the decoded image bounds. The map is built
// once at ingestion and treated as read-only for the duration of a
// render.
type PixelMap map[Point]RGB

// Bounds records the maximum coordinates observed among present
// samples.
type Bounds struct {
	MaxX, MaxY int
}

// CharWidth returns the width in cells of the character grid covering
// the bounds. A partially filled trailing block still occupies a cell.
func (b Bounds) CharWidth() int {
	return (b.MaxX + 2) / 2
}

// CharHeight returns the height in cells of the character grid
// covering the bounds.
func (b Bounds) CharHeight() int {
	return (b.MaxY + 4) / 4
}

// ParsePixels reads an ImageMagick text-format pixel enumeration:
//
//	# ImageMagick pixel enumeration: 4,4,255,srgb
//	0,0: (255,255,255)  #FFFFFF  white
//	1,0: (100%,50%,0%)  #FF8000
//
// Channel values are plain 0-255 integers or percentages; percentages
// convert via round(pct*255/100). Blank lines and comment lines are
// ignored. Malformed entries are skipped individually and silently;
// only a stream yielding zero usable samples is an error (ErrNoPixels).
// When invert is true the negative of each color is stored.
func ParsePixels(r io.Reader, invert bool) (PixelMap, Bounds, error) {
	pixels := make(PixelMap)
	var bounds Bounds

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pt, c, ok := parsePixelLine(line)
		if !ok {
			continue
		}
		if invert {
			c = c.Invert()
		}
		if pt.X > bounds.MaxX {
			bounds.MaxX = pt.X
		}
		if pt.Y > bounds.MaxY {
			bounds.MaxY = pt.Y
		}
		pixels[pt] = c
	}
	if err := scanner.Err(); err != nil {
		return nil, Bounds{}, err
	}
	if len(pixels) == 0 {
		return nil, Bounds{}, ErrNoPixels
	}
	return pixels, bounds, nil
}

// parsePixelLine parses one "x,y: (r,g,b)" entry. Trailing hex and
// color-name columns are ignored. ok is false for any malformed line.
func parsePixelLine(line string) (pt Point, c RGB, ok bool) {
	pos, rest, found := strings.Cut(line, ":")
	if !found {
		return Point{}, RGB{}, false
	}
	xs, ys, found := strings.Cut(pos, ",")
	if !found {
		return Point{}, RGB{}, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, RGB{}, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, RGB{}, false
	}
	if x < 0 || y < 0 {
		return Point{}, RGB{}, false
	}

	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return Point{}, RGB{}, false
	}
	length := strings.IndexByte(rest[open:], ')')
	if length < 0 {
		return Point{}, RGB{}, false
	}
	parts := strings.Split(rest[open+1:open+length], ",")
	if len(parts) < 3 {
		return Point{}, RGB{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := parseChannel(strings.TrimSpace(parts[i]))
		if !ok {
			return Point{}, RGB{}, false
		}
		channels[i] = v
	}
	return Point{X: x, Y: y},
		RGB{R: channels[0], G: channels[1], B: channels[2]},
		true
}

// parseChannel parses one channel value, either a 0-255 integer or a
// percentage. Out-of-range values are clamped.
func parseChannel(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampChannel(int(math.Round(pct * 255 / 100))), true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return clampChannel(v), true
}

// clampChannel clamps an integer channel value to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
