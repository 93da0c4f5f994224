package imageutil

import "image/color"

// FloydSteinberg applies Floyd-Steinberg error diffusion to img in
// place. Each pixel is snapped through quantize and the per-channel
// quantization error is distributed to the unvisited neighbors with
// the classic 7/16, 3/16, 5/16, 1/16 weights. The quantizer is
// supplied by the caller so the package stays palette-agnostic.
func FloydSteinberg(img *RGBAImage, quantize func(color.RGBA) color.RGBA) {
	width, height := img.Width(), img.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := img.RGBAAt(x, y)
			snapped := quantize(old)
			img.SetRGBA(x, y, snapped)

			errR := int(old.R) - int(snapped.R)
			errG := int(old.G) - int(snapped.G)
			errB := int(old.B) - int(snapped.B)

			diffuse(img, x+1, y, errR, errG, errB, 7)
			diffuse(img, x-1, y+1, errR, errG, errB, 3)
			diffuse(img, x, y+1, errR, errG, errB, 5)
			diffuse(img, x+1, y+1, errR, errG, errB, 1)
		}
	}
}

// diffuse adds weight sixteenths of the quantization error to the
// pixel at (x, y), clamping each channel to [0, 255]. Out-of-bounds
// coordinates are ignored.
func diffuse(img *RGBAImage, x, y, errR, errG, errB, weight int) {
	if x < 0 || y < 0 || x >= img.Width() || y >= img.Height() {
		return
	}
	c := img.RGBAAt(x, y)
	c.R = clamp8(int(c.R) + errR*weight/16)
	c.G = clamp8(int(c.G) + errG*weight/16)
	c.B = clamp8(int(c.B) + errB*weight/16)
	img.SetRGBA(x, y, c)
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
