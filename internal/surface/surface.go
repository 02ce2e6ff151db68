// Package surface implements the drawing surface of the paint program: a
// single raster buffer that accumulates freehand strokes, tracks whether it
// has unsaved changes and converts to and from image files.
package surface

import (
	"image"
	"image/color"
	"sync"
)

// Surface owns the raster buffer, the pen and the modified flag.
//
// Mutations swap or edit the buffer under a write lock and Snapshot copies it
// under a read lock, so a renderer may read from another goroutine than the
// one delivering pointer events.
type Surface struct {
	mu         sync.RWMutex
	img        *image.NRGBA
	view       image.Point
	background color.NRGBA
	penColor   color.NRGBA
	penWidth   int
	modified   bool
	gen        uint64 // bumped on every pixel change
	scribbling bool
	lastPoint  image.Point

	// OnChange, when set, is called with the damaged area after every
	// change to the pixels or the buffer. It runs without the lock held.
	OnChange func(r image.Rectangle)
}

// New creates a blank surface of the given visible size.
func New(width, height int, opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	size := clampSize(width, height)
	return &Surface{
		img:        newBuffer(size, o.background),
		view:       size,
		background: o.background,
		penColor:   o.penColor,
		penWidth:   o.penWidth,
	}
}

func (s *Surface) SetPenColor(c color.Color) {
	s.mu.Lock()
	s.penColor = toNRGBA(c)
	s.mu.Unlock()
}

func (s *Surface) PenColor() color.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.penColor
}

// SetPenWidth sets the stroke thickness, clamped to [MinPenWidth, MaxPenWidth].
func (s *Surface) SetPenWidth(w int) {
	s.mu.Lock()
	s.penWidth = clampWidth(w)
	s.mu.Unlock()
}

func (s *Surface) PenWidth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.penWidth
}

func (s *Surface) Background() color.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

// IsModified reports whether the buffer changed since the last successful
// save or load.
func (s *Surface) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// Scribbling reports whether a stroke is in progress.
func (s *Surface) Scribbling() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scribbling
}

// Size returns the buffer dimensions.
func (s *Surface) Size() image.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.img.Rect.Size()
}

// Snapshot returns a copy of the buffer, safe to keep and read while the
// surface goes on changing.
func (s *Surface) Snapshot() *image.NRGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBuffer(s.img)
}

func (s *Surface) notify(r image.Rectangle) {
	if s.OnChange != nil && !r.Empty() {
		s.OnChange(r)
	}
}

func cloneBuffer(src *image.NRGBA) *image.NRGBA {
	dst := &image.NRGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}
