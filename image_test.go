package img2braille

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/img2braille/imageutil"
)

func TestSaveCellsToPNG(t *testing.T) {
	t.Parallel()

	white := RGB{255, 255, 255}
	r := NewRenderer()
	grid := r.Compose(PixelMap{
		{0, 0}: white,
		{1, 0}: white,
		{0, 1}: white,
		{1, 1}: white,
	}, Bounds{MaxX: 1, MaxY: 1})

	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, SaveCellsToPNG(grid, path, 2))

	img, err := imageutil.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Width())
	assert.Equal(t, 8, img.Height())

	// The top-left dot is raised and painted palette white; the bottom
	// row of the cell is absent and stays black.
	assert.Equal(t, imageutil.RGB{R: 255, G: 255, B: 255}, img.GetRGB(0, 0))
	assert.Equal(t, imageutil.RGB{}, img.GetRGB(0, 7))
}

func TestSaveCellsToPNGEmptyGrid(t *testing.T) {
	t.Parallel()

	err := SaveCellsToPNG(nil, filepath.Join(t.TempDir(), "x.png"), 1)
	assert.Error(t, err)
}
