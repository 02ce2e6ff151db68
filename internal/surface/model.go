package surface

import (
	"image"
	"image/color"
)

// Pen width bounds. SetPenWidth clamps to this range.
const (
	MinPenWidth = 1
	MaxPenWidth = 50
)

// Defaults used by New when no option overrides them.
var (
	DefaultPenColor   = color.NRGBA{B: 255, A: 255}
	DefaultBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const DefaultPenWidth = 1

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	background color.NRGBA
	penColor   color.NRGBA
	penWidth   int
}

func defaultOptions() options {
	return options{
		background: DefaultBackground,
		penColor:   DefaultPenColor,
		penWidth:   DefaultPenWidth,
	}
}

// WithBackground sets the color used for blank, cleared and grown areas.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = toNRGBA(c)
	}
}

// WithPenColor sets the initial pen color.
func WithPenColor(c color.Color) Option {
	return func(o *options) {
		o.penColor = toNRGBA(c)
	}
}

// WithPenWidth sets the initial pen width. The value is clamped.
func WithPenWidth(w int) Option {
	return func(o *options) {
		o.penWidth = clampWidth(w)
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func clampWidth(w int) int {
	if w < MinPenWidth {
		return MinPenWidth
	}
	if w > MaxPenWidth {
		return MaxPenWidth
	}
	return w
}

func maxPoint(a, b image.Point) image.Point {
	if b.X > a.X {
		a.X = b.X
	}
	if b.Y > a.Y {
		a.Y = b.Y
	}
	return a
}

// clampSize keeps a requested size at least 1x1.
func clampSize(w, h int) image.Point {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}
