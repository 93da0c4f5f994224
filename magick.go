package img2braille

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Decoder is the capability interface for the external image decode
// step. Decode returns the pixel samples of the image at path resized
// to pixelWidth columns, together with the observed bounds. Dithering,
// when requested, is applied by the decoder; it never reaches the
// compositor.
//
// Decode failures are terminal for the invocation; no decoder retries.
type Decoder interface {
	Decode(ctx context.Context, path string, pixelWidth int, dither bool) (PixelMap, Bounds, error)
}

// MagickDecoder shells out to ImageMagick's convert tool and parses
// its text pixel enumeration. Decoding and resizing stay inside
// ImageMagick; the compositor only ever sees pixel samples.
type MagickDecoder struct {
	// Convert overrides the convert executable name. Empty means
	// "convert" from PATH.
	Convert string

	// Invert applies the negative transform at ingestion.
	Invert bool
}

func (d *MagickDecoder) convertTool() string {
	if d.Convert != "" {
		return d.Convert
	}
	return "convert"
}

// convertArgs builds the convert invocation for one decode: optional
// Floyd-Steinberg dithering, resize to pixelWidth columns, a slight
// unsharp mask, and text pixel enumeration on stdout.
func convertArgs(path string, pixelWidth int, dither bool) []string {
	args := []string{path}
	if dither {
		args = append(args, "-dither", "FloydSteinberg")
	}
	return append(args,
		"-resize", fmt.Sprintf("%dx", pixelWidth),
		"-unsharp", "0.5x0.5+0.5+0.008",
		"-colorspace", "RGB",
		"txt:-",
	)
}

// Decode implements Decoder. An inaccessible input path is reported
// before the tool is spawned; a non-zero exit carries the tool's own
// diagnostic text.
func (d *MagickDecoder) Decode(ctx context.Context, path string, pixelWidth int, dither bool) (PixelMap, Bounds, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, Bounds{}, fmt.Errorf("input %s: %w", path, err)
	}

	cmd := exec.CommandContext(ctx, d.convertTool(), convertArgs(path, pixelWidth, dither)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, Bounds{}, fmt.Errorf("convert failed: %v: %s",
			err, strings.TrimSpace(stderr.String()))
	}

	return ParsePixels(&stdout, d.Invert)
}

// Identify probes the original dimensions of the image at path with
// ImageMagick's identify tool.
func Identify(ctx context.Context, path string) (width, height int, err error) {
	cmd := exec.CommandContext(ctx, "identify", "-format", "%w %h", path)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("identify %s: %w", path, err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%d %d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("identify %s: unexpected output %q", path, out)
	}
	return width, height, nil
}
