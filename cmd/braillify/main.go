package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"

	"github.com/wbrown/img2braille"
)

func main() {
	app := &cli.App{
		Name:      "braillify",
		Usage:     "render images in the terminal with colored braille glyphs",
		ArgsUsage: "IMAGE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Value:   80,
				Usage:   "display width in characters",
			},
			&cli.BoolFlag{
				Name:    "bg",
				Aliases: []string{"b"},
				Usage:   "use background color mode (clearer but may flicker)",
			},
			&cli.BoolFlag{
				Name:    "invert",
				Aliases: []string{"i"},
				Usage:   "invert colors",
			},
			&cli.BoolFlag{
				Name:    "dither",
				Aliases: []string{"d"},
				Usage:   "use Floyd-Steinberg dithering for better color quality",
			},
			&cli.BoolFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "test 256-color support and exit",
			},
			&cli.StringFlag{
				Name:  "decoder",
				Value: "magick",
				Usage: "image decoder: magick, native or opencv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to file instead of stdout (.png writes a preview image)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log progress to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("test") {
		img2braille.WriteColorTest(os.Stdout)
		return nil
	}
	if c.NArg() < 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}
	path := c.Args().First()

	logger := slog.New(tint.NewHandler(io.Discard, nil))
	if c.Bool("verbose") {
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}))
	}

	decoder, err := newDecoder(c.String("decoder"), c.Bool("invert"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	renderer := img2braille.NewRenderer(
		img2braille.WithTargetWidth(c.Int("width")),
		img2braille.WithBackground(c.Bool("bg")),
		img2braille.WithDither(c.Bool("dither")),
		img2braille.WithDecoder(decoder),
		img2braille.WithLogger(logger),
	)

	ctx := c.Context
	if c.String("decoder") == "magick" {
		if w, h, err := img2braille.Identify(ctx, path); err == nil {
			logger.Info("original dimensions", "width", w, "height", h)
		}
	}

	pixels, bounds, err := decoder.Decode(ctx, path, c.Int("width")*2, c.Bool("dither"))
	if err != nil {
		return cli.Exit(fmt.Errorf("decoding %s: %w", path, err), 1)
	}
	logger.Info("decoded image",
		"samples", len(pixels),
		"cells", fmt.Sprintf("%dx%d", bounds.CharWidth(), bounds.CharHeight()))

	grid := renderer.Compose(pixels, bounds)

	out := c.String("output")
	switch {
	case strings.HasSuffix(strings.ToLower(out), ".png"):
		if err := img2braille.SaveCellsToPNG(grid, out, 4); err != nil {
			return cli.Exit(err, 1)
		}
	case out != "":
		if err := os.WriteFile(out, []byte(renderer.Encode(grid)), 0644); err != nil {
			return cli.Exit(err, 1)
		}
	default:
		fmt.Print(renderer.Encode(grid))
	}

	hits, misses, rate := renderer.CacheStats()
	logger.Debug("color cache", "hits", hits, "misses", misses, "hitRate", rate)
	return nil
}

// newDecoder builds the decode capability selected on the command
// line.
func newDecoder(name string, invert bool) (img2braille.Decoder, error) {
	switch name {
	case "magick":
		return &img2braille.MagickDecoder{Invert: invert}, nil
	case "native":
		return &img2braille.NativeDecoder{Invert: invert}, nil
	case "opencv":
		return &img2braille.CVDecoder{Invert: invert}, nil
	default:
		return nil, fmt.Errorf("unknown decoder %q, options are magick, native or opencv", name)
	}
}
