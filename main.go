package main

import (
	"fmt"
	"log/slog"
	"os"

	"picdither/imgio"
	"picdither/palette"
	"picdither/transform"

	"github.com/alecthomas/kong"
)

type Globals struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Format   string `help:"Output format, or 'auto' to pick it from the output extension. JPEG is lossy and will not keep the reduced colors exact" enum:"auto,png,gif,jpeg,bmp,tiff" default:"auto"`
}

type IOParams struct {
	Input  string `arg:"" help:"Image to convert" type:"existingfile"`
	Output string `arg:"" optional:"" help:"Destination image" default:"out.png"`
}

type ThresholdCmd struct {
	IOParams
}

func (c *ThresholdCmd) Run(g *Globals) error {
	return process(g, c.IOParams, transform.Threshold{})
}

type PaletteCmd struct {
	IOParams
	NColors int    `name:"n-colors" short:"n" required:"" help:"Number of colors to use, taken in order from black, grey, white, red, green, blue, yellow, cyan, magenta"`
	PalFile string `name:"pal-file" type:"existingfile" help:"RIFF PAL file whose colors replace the built-in list"`

	Registry palette.Registry `kong:"-"`
}

func (c *PaletteCmd) Validate(kctx *kong.Context) error {
	if c.NColors < 1 {
		return fmt.Errorf("invalid color count %d: %w", c.NColors, palette.ErrInvalidColorCount)
	}

	c.Registry = palette.Default()
	if c.PalFile != "" {
		reg, err := palette.Load(c.PalFile)
		if err != nil {
			return err
		}
		c.Registry = reg
	}
	return nil
}

func (c *PaletteCmd) Run(g *Globals) error {
	return process(g, c.IOParams, transform.Palette{Colors: c.NColors, Registry: c.Registry})
}

type DitheringCmd struct {
	IOParams
	Overflow string `help:"What to do when diffused error leaves the 0-255 range" enum:"clamp,wrap" default:"clamp"`
}

func (c *DitheringCmd) Run(g *Globals) error {
	overflow, err := transform.ParseOverflow(c.Overflow)
	if err != nil {
		return err
	}
	return process(g, c.IOParams, transform.Dithering{Overflow: overflow})
}

type CLI struct {
	Globals

	Threshold ThresholdCmd `cmd:"" help:"Render the image in black and white by luminance threshold"`
	Palette   PaletteCmd   `cmd:"" help:"Render the image with a limited number of palette colors"`
	Dithering DitheringCmd `cmd:"" help:"Render the image in black and white with Floyd-Steinberg dithering"`
}

func process(g *Globals, params IOParams, mode transform.Mode) error {
	logger := slog.Default().With("file", params.Input)

	format, err := imgio.FormatFor(params.Output, g.Format)
	if err != nil {
		return fmt.Errorf("invalid output %q: %w", params.Output, err)
	}

	if format == "jpeg" {
		logger.Warn("jpeg output is lossy, pixels will not stay within the reduced colors", "to", params.Output)
	}

	img, srcFormat, err := imgio.Decode(params.Input)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	logger.Info("decoded", "format", srcFormat, "width", img.Width(), "height", img.Height())

	if err = transform.Apply(logger, img, mode); err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err = imgio.Encode(img, params.Output, format); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	logger.Info("saved", "to", params.Output, "format", format)
	return nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("picdither"),
		kong.Description("Convert an image to black and white or to a reduced color palette."),
		kong.UsageOnError(),
	)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cli.LogLevel),
	})))

	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}
