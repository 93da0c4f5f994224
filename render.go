package img2braille

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Renderer converts decoded pixel data into styled braille text.
// A Renderer carries configuration and aggregate cache statistics;
// the color-conversion cache itself is created fresh for every Compose
// call, so one Renderer may serve sequential renders without cross
// talk and independent Renderers may run concurrently.
type Renderer struct {
	// TargetWidth is the output width in character cells. The decoder
	// is asked for TargetWidth*2 pixel columns so every cell covers a
	// full 2x4 block.
	TargetWidth int

	// UseBackground selects background color directives instead of
	// foreground ones. It affects only the encoder, never quantization.
	UseBackground bool

	// Dither requests Floyd-Steinberg dithering from the decoder. It
	// never affects the compositor itself.
	Dither bool

	decoder Decoder
	logger  *slog.Logger

	cacheHits   int
	cacheMisses int
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options.
// Defaults: TargetWidth=80, foreground color mode, no dithering,
// MagickDecoder, discarded logs.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		TargetWidth: 80,
		decoder:     &MagickDecoder{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithTargetWidth sets the output width in character cells.
func WithTargetWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.TargetWidth = width
	}
}

// WithBackground selects background color mode for the encoder.
func WithBackground(useBackground bool) RendererOption {
	return func(r *Renderer) {
		r.UseBackground = useBackground
	}
}

// WithDither requests dithering from the decoder.
func WithDither(dither bool) RendererOption {
	return func(r *Renderer) {
		r.Dither = dither
	}
}

// WithDecoder sets the image decode capability.
func WithDecoder(d Decoder) RendererOption {
	return func(r *Renderer) {
		r.decoder = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// Compose walks the pixel grid cell by cell, gathers each 2x4 block,
// and assembles the styled cell grid in row-major order. Cells have no
// cross-cell state beyond the color cache, which Compose owns for the
// duration of the call.
func (r *Renderer) Compose(pixels PixelMap, bounds Bounds) [][]Cell {
	cache := NewColorCache()
	width, height := bounds.CharWidth(), bounds.CharHeight()

	grid := make([][]Cell, height)
	for charY := 0; charY < height; charY++ {
		row := make([]Cell, width)
		for charX := 0; charX < width; charX++ {
			row[charX] = composeCell(pixels, charX, charY, cache)
		}
		grid[charY] = row
	}

	hits, misses := cache.Stats()
	r.cacheHits += hits
	r.cacheMisses += misses
	r.logger.Debug("composed frame",
		"cells", width*height,
		"cacheHits", hits,
		"cacheMisses", misses)
	return grid
}

// composeCell builds the styled cell for one 2x4 block. The block's
// representative color is the truncated integer mean of the present
// samples, averaged per channel; truncation, not rounding, to match
// the established visible output.
func composeCell(pixels PixelMap, charX, charY int, cache *ColorCache) Cell {
	var block Block
	var sumR, sumG, sumB, present int

	for py := 0; py < 4; py++ {
		for px := 0; px < 2; px++ {
			c, ok := pixels[Point{X: charX*2 + px, Y: charY*4 + py}]
			if !ok {
				continue
			}
			block[py*2+px] = Sample{Color: c, Ok: true}
			sumR += int(c.R)
			sumG += int(c.G)
			sumB += int(c.B)
			present++
		}
	}

	if present == 0 {
		return Cell{Rune: ' ', Color: NoColor}
	}
	avg := RGB{
		R: uint8(sumR / present),
		G: uint8(sumG / present),
		B: uint8(sumB / present),
	}
	return Cell{
		Rune:  block.Pattern().Rune(),
		Color: cache.Lookup(avg),
	}
}

// Encode serializes a composed grid into newline-terminated styled
// lines. No style remains active past the end of any line.
func (r *Renderer) Encode(grid [][]Cell) string {
	var out strings.Builder
	for _, row := range grid {
		out.WriteString(EncodeRow(row, r.UseBackground))
		out.WriteByte('\n')
	}
	return out.String()
}

// Render composes and encodes pixel data in one step.
func (r *Renderer) Render(pixels PixelMap, bounds Bounds) string {
	return r.Encode(r.Compose(pixels, bounds))
}

// RenderImage decodes the image at path through the configured decoder
// and renders it to styled text.
func (r *Renderer) RenderImage(ctx context.Context, path string) (string, error) {
	pixels, bounds, err := r.decoder.Decode(ctx, path, r.TargetWidth*2, r.Dither)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	r.logger.Info("decoded image",
		"path", path,
		"samples", len(pixels),
		"cells", fmt.Sprintf("%dx%d", bounds.CharWidth(), bounds.CharHeight()))
	return r.Render(pixels, bounds), nil
}

// CacheStats returns the color-cache hit/miss counts aggregated over
// all renders performed by this Renderer, and the resulting hit rate.
func (r *Renderer) CacheStats() (hits, misses int, hitRate float64) {
	total := r.cacheHits + r.cacheMisses
	if total == 0 {
		return 0, 0, 0
	}
	return r.cacheHits, r.cacheMisses, float64(r.cacheHits) / float64(total)
}
