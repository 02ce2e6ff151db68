package ui

import (
	"image"
	"image/color"
	"testing"

	"Scribble/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

var ink = color.NRGBA{A: 0xff}

func mouse(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: b}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestScribbleWidget_ResizeGrowsSurface(t *testing.T) {
	test.NewTempApp(t)
	s := surface.New(50, 50)
	w := NewScribbleWidget(s)

	w.Resize(fyne.NewSize(80, 60))
	assert.Equal(t, image.Pt(80, 60), s.Size())
	w.Resize(fyne.NewSize(20, 20))
	assert.Equal(t, image.Pt(80, 60), s.Size())
}

func TestScribbleWidget_Stroke(t *testing.T) {
	test.NewTempApp(t)
	s := surface.New(50, 50, surface.WithPenColor(ink))
	w := NewScribbleWidget(s)

	w.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	assert.True(t, s.Scribbling())
	w.Dragged(drag(30, 10))
	w.MouseUp(mouse(30, 20, desktop.MouseButtonPrimary))
	assert.False(t, s.Scribbling())

	img := s.Snapshot()
	assert.Equal(t, ink, img.NRGBAAt(20, 10))
	assert.Equal(t, ink, img.NRGBAAt(30, 15))
	assert.True(t, s.IsModified())

	// A late DragEnd after the release draws nothing more.
	w.DragEnd()
	assert.Equal(t, img.Pix, s.Snapshot().Pix)
}

func TestScribbleWidget_SecondaryButtonIgnored(t *testing.T) {
	test.NewTempApp(t)
	s := surface.New(50, 50)
	w := NewScribbleWidget(s)

	w.MouseDown(mouse(10, 10, desktop.MouseButtonSecondary))
	w.Dragged(drag(20, 20))
	w.MouseUp(mouse(20, 20, desktop.MouseButtonSecondary))
	assert.False(t, s.IsModified())
}

func TestScribbleWidget_DragEndFinishesStroke(t *testing.T) {
	test.NewTempApp(t)
	s := surface.New(50, 50, surface.WithPenColor(ink))
	w := NewScribbleWidget(s)

	w.MouseDown(mouse(5, 5, desktop.MouseButtonPrimary))
	w.Dragged(drag(15, 5))
	w.DragEnd()
	assert.False(t, s.Scribbling())
	assert.Equal(t, ink, s.Snapshot().NRGBAAt(15, 5))
}

func TestScribbleWidget_RenderCropsToView(t *testing.T) {
	test.NewTempApp(t)
	s := surface.New(50, 50)
	w := NewScribbleWidget(s)

	img := w.render(30, 20)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())
}
