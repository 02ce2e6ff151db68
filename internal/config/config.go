// Package config holds the command-line configuration of the paint program.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Config is the startup configuration of the program.
type Config struct {
	Width      int
	Height     int
	PenColor   color.NRGBA
	PenWidth   int
	Background color.NRGBA
	Open       string  // image to load at startup, if any
	PrintDPI   float64 // raster resolution of printed pages
	Verbose    bool
}

// Default mirrors the stock scribble window: 500x500, blue 1px pen on white.
func Default() Config {
	return Config{
		Width:      500,
		Height:     500,
		PenColor:   color.NRGBA{B: 0xff, A: 0xff},
		PenWidth:   1,
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		PrintDPI:   150,
	}
}

// Parse reads the configuration from command-line arguments, without the
// program name. Usage and parse errors are written to out.
func Parse(args []string, out io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("scribble", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial canvas height in pixels")
	fs.IntVar(&cfg.PenWidth, "pen-width", cfg.PenWidth, "initial pen width (1-50)")
	fs.Func("pen-color", "initial pen color: a color name or #rrggbb (default blue)", colorFlag(&cfg.PenColor))
	fs.Func("background", "canvas background: a color name or #rrggbb (default white)", colorFlag(&cfg.Background))
	fs.StringVar(&cfg.Open, "open", "", "image file to open at startup")
	fs.Float64Var(&cfg.PrintDPI, "print-dpi", cfg.PrintDPI, "resolution of the raster embedded in printed pages")
	fs.BoolVar(&cfg.Verbose, "v", false, "log canvas activity")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		if cfg.Open != "" || fs.NArg() > 1 {
			return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		}
		cfg.Open = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have no sensible clamped fallback.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("canvas size %dx%d: both sides must be at least 1", c.Width, c.Height)
	}
	if c.PrintDPI <= 0 {
		return fmt.Errorf("print-dpi %v: must be positive", c.PrintDPI)
	}
	return nil
}

func colorFlag(dst *color.NRGBA) func(string) error {
	return func(s string) error {
		c, err := ParseColor(s)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}
}

var errBadColor = errors.New("want a color name, #rgb, #rrggbb or #rrggbbaa")

// ParseColor accepts SVG/CSS color names ("red", "cornflowerblue") and hex
// notation with or without the leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, errBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, errBadColor)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
