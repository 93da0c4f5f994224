package img2braille

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/wbrown/img2braille/imageutil"
)

// CVDecoder decodes and resizes images through OpenCV. It trades a
// heavyweight dependency for the widest format support and the fastest
// resampling path.
type CVDecoder struct {
	// Invert applies the negative transform at ingestion.
	Invert bool
}

// Decode implements Decoder. The image is resized to pixelWidth
// columns with area interpolation, preserving aspect ratio, then
// handed to the same materialization step as the native decoder.
func (d *CVDecoder) Decode(ctx context.Context, path string, pixelWidth int, dither bool) (PixelMap, Bounds, error) {
	if err := ctx.Err(); err != nil {
		return nil, Bounds{}, err
	}
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return nil, Bounds{}, fmt.Errorf("could not read image from %s", path)
	}
	defer img.Close()

	height := int(float64(pixelWidth) * float64(img.Rows()) / float64(img.Cols()))
	if height < 1 {
		height = 1
	}
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(img, &resized, image.Pt(pixelWidth, height), 0, 0, gocv.InterpolationArea)

	rgba := imageutil.NewRGBAImage(resized.Cols(), resized.Rows())
	for y := 0; y < resized.Rows(); y++ {
		for x := 0; x < resized.Cols(); x++ {
			// Mat channels are BGR
			vec := resized.GetVecbAt(y, x)
			rgba.SetRGB(x, y, imageutil.RGB{R: vec[2], G: vec[1], B: vec[0]})
		}
	}
	return materialize(rgba, d.Invert, dither)
}
