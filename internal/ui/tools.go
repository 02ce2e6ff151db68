package ui

import (
	"fmt"
	"image/color"

	"Scribble/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette is the quick-pick row of the toolbar. Any other color goes through
// the pen color dialog.
var palette = []color.NRGBA{
	{A: 255},                 // Black
	{R: 255, A: 255},         // Red
	{G: 160, A: 255},         // Green
	{B: 255, A: 255},         // Blue
	{R: 255, G: 200, A: 255}, // Yellow
	{R: 255, G: 255, B: 255, A: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar keeps the width slider in step with pen changes made elsewhere.
type toolbar struct {
	surface *surface.Surface
	slider  *widget.Slider
	label   *widget.Label
}

func newToolbar(s *surface.Surface, h handler) (*toolbar, fyne.CanvasObject) {
	tb := &toolbar{surface: s}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { dispatch(h, ActionOpen, "") }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { dispatch(h, ActionSaveAs, "png") }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { dispatch(h, ActionPrint, "") }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() { dispatch(h, ActionPenColor, "") }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { dispatch(h, ActionClear, "") }),
	)

	onColorTapped := func(c color.Color) {
		s.SetPenColor(c)
	}
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, onColorTapped))
	}

	tb.label = widget.NewLabel("")
	tb.slider = widget.NewSlider(surface.MinPenWidth, surface.MaxPenWidth)
	tb.slider.Step = 1
	tb.slider.OnChanged = func(val float64) {
		s.SetPenWidth(int(val))
		tb.label.SetText(fmt.Sprintf("%2d px", s.PenWidth()))
	}
	tb.sync()
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), tb.slider)

	return tb, container.NewHBox(
		actions,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		tb.label,
		layout.NewSpacer(),
	)
}

// sync shows the surface pen width.
func (tb *toolbar) sync() {
	w := tb.surface.PenWidth()
	tb.slider.SetValue(float64(w))
	tb.label.SetText(fmt.Sprintf("%2d px", w))
}
