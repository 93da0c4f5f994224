package img2braille

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. The RGB color space is
// additive, meaning that colors are created by adding together the
// red, green, and blue channels.
type RGB struct {
	R, G, B uint8
}

// Luminance returns the perceptual brightness of the color using the
// ITU-R BT.709 luma weights, which give the green channel the largest
// share to match human eye sensitivity. The result is in [0, 255].
func (c RGB) Luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// Invert returns the photographic negative of the color.
func (c RGB) Invert() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Achromatic reports whether all three channels carry the same value,
// in which case the color lies on the grayscale axis.
func (c RGB) Achromatic() bool {
	return c.R == c.G && c.G == c.B
}
