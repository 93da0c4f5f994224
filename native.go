package img2braille

import (
	"context"
	"image/color"

	"github.com/wbrown/img2braille/imageutil"
)

// NativeDecoder decodes and resizes images in pure Go through the
// imageutil pipeline. It supports PNG, JPEG, GIF and TIFF sources and
// needs no external tools.
type NativeDecoder struct {
	// Invert applies the negative transform at ingestion.
	Invert bool
}

// Decode implements Decoder. The image is resized to pixelWidth
// columns with Catmull-Rom interpolation, preserving aspect ratio.
// When dither is set, Floyd-Steinberg error diffusion toward the
// 256-color terminal palette runs before sampling.
func (d *NativeDecoder) Decode(ctx context.Context, path string, pixelWidth int, dither bool) (PixelMap, Bounds, error) {
	if err := ctx.Err(); err != nil {
		return nil, Bounds{}, err
	}
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, Bounds{}, err
	}
	resized := imageutil.ResizeToWidth(img, pixelWidth, imageutil.InterpolationArea)
	return materialize(resized, d.Invert, dither)
}

// materialize converts a decoded, already-resized image into the dense
// pixel map the compositor consumes, applying optional dithering and
// inversion at this ingestion boundary.
func materialize(img *imageutil.RGBAImage, invert, dither bool) (PixelMap, Bounds, error) {
	if dither {
		imageutil.FloydSteinberg(img, paletteQuantize)
	}
	width, height := img.Width(), img.Height()
	if width == 0 || height == 0 {
		return nil, Bounds{}, ErrNoPixels
	}

	pixels := make(PixelMap, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.GetRGB(x, y)
			rgb := RGB{R: c.R, G: c.G, B: c.B}
			if invert {
				rgb = rgb.Invert()
			}
			pixels[Point{X: x, Y: y}] = rgb
		}
	}
	return pixels, Bounds{MaxX: width - 1, MaxY: height - 1}, nil
}

// paletteQuantize snaps a color to the RGB value of its terminal
// palette entry, the target set for native dithering.
func paletteQuantize(c color.RGBA) color.RGBA {
	snapped := PaletteRGB(AnsiIndex(RGB{R: c.R, G: c.G, B: c.B}))
	return color.RGBA{R: snapped.R, G: snapped.G, B: snapped.B, A: c.A}
}
