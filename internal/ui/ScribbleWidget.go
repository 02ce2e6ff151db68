package ui

import (
	"image"

	"Scribble/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ScribbleWidget shows a surface and turns pointer events into strokes.
type ScribbleWidget struct {
	widget.BaseWidget
	surface *surface.Surface
	raster  *canvas.Raster
	last    image.Point // last pointer sample of the current stroke, in pixels
}

var _ fyne.Widget = (*ScribbleWidget)(nil)
var _ fyne.Draggable = (*ScribbleWidget)(nil)
var _ desktop.Mouseable = (*ScribbleWidget)(nil)

func NewScribbleWidget(s *surface.Surface) *ScribbleWidget {
	w := &ScribbleWidget{surface: s}
	w.raster = canvas.NewRaster(w.render)
	w.raster.ScaleMode = canvas.ImageScalePixels
	s.OnChange = func(image.Rectangle) {
		w.raster.Refresh()
	}
	w.ExtendBaseWidget(w)
	return w
}

// render crops the surface to the visible pixel area. The buffer may be
// larger than the widget after a shrink.
func (w *ScribbleWidget) render(width, height int) image.Image {
	img := w.surface.Snapshot()
	return img.SubImage(image.Rect(0, 0, width, height))
}

// scale is the pixel density of the canvas showing the widget.
func (w *ScribbleWidget) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(w); c != nil {
		return c.Scale()
	}
	return 1
}

func (w *ScribbleWidget) toPixel(pos fyne.Position) image.Point {
	s := w.scale()
	return image.Pt(int(pos.X*s), int(pos.Y*s))
}

// Resize grows the surface to the new visible size before laying out.
func (w *ScribbleWidget) Resize(size fyne.Size) {
	px := w.toPixel(fyne.NewPos(size.Width, size.Height))
	w.surface.Resize(px.X, px.Y)
	w.BaseWidget.Resize(size)
}

func (w *ScribbleWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.last = w.toPixel(e.Position)
	w.surface.BeginStroke(w.last)
}

func (w *ScribbleWidget) Dragged(e *fyne.DragEvent) {
	if !w.surface.Scribbling() {
		return
	}
	w.last = w.toPixel(e.Position)
	w.surface.ContinueStroke(w.last)
}

func (w *ScribbleWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.surface.Scribbling() {
		return
	}
	w.last = w.toPixel(e.Position)
	w.surface.EndStroke(w.last)
}

// DragEnd finishes a stroke whose button release was not delivered as a
// MouseUp, for instance when it happened outside the window.
func (w *ScribbleWidget) DragEnd() {
	if w.surface.Scribbling() {
		w.surface.EndStroke(w.last)
	}
}

func (w *ScribbleWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

func (w *ScribbleWidget) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}
