package img2braille

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2braille/imageutil"
)

// writeTestPNG writes a uniform white width-by-height PNG and returns
// its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, imageutil.RGB{R: 255, G: 255, B: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "white.png")
	require.NoError(t, imageutil.SavePNG(img, path))
	return path
}

func TestNativeDecode(t *testing.T) {
	t.Parallel()

	path := writeTestPNG(t, 8, 8)

	d := &NativeDecoder{}
	pixels, bounds, err := d.Decode(context.Background(), path, 4, false)
	require.NoError(t, err)

	assert.Equal(t, Bounds{MaxX: 3, MaxY: 3}, bounds)
	assert.Len(t, pixels, 16)
	assert.Equal(t, RGB{255, 255, 255}, pixels[Point{0, 0}])
}

func TestNativeDecodeInvert(t *testing.T) {
	t.Parallel()

	path := writeTestPNG(t, 4, 4)

	d := &NativeDecoder{Invert: true}
	pixels, _, err := d.Decode(context.Background(), path, 4, false)
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 0, 0}, pixels[Point{0, 0}])
}

func TestNativeDecodeMissingFile(t *testing.T) {
	t.Parallel()

	d := &NativeDecoder{}
	_, _, err := d.Decode(context.Background(), "/no/such/file.png", 4, false)
	require.Error(t, err)
}

func TestNativeDecodeCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &NativeDecoder{}
	_, _, err := d.Decode(ctx, "unused.png", 4, false)
	assert.ErrorIs(t, err, context.Canceled)
}
