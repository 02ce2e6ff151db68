package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Clear fills the buffer with the background color at its current size.
func (s *Surface) Clear() {
	s.mu.Lock()
	s.img = newBuffer(s.img.Rect.Size(), s.background)
	s.gen++
	s.modified = true
	r := s.img.Rect
	s.mu.Unlock()

	logger().Debug("surface cleared", "size", r.Size())
	s.notify(r)
}

// Resize records the new visible size and grows the buffer to cover it.
// Existing pixels keep their coordinates and the added area is background.
// The buffer never shrinks, so content scrolled out of view by a smaller
// window comes back when the window grows again.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	s.view = clampSize(width, height)
	old := s.img
	s.img = grow(old, s.view, s.background)
	grown := s.img != old
	r := s.img.Rect
	s.mu.Unlock()

	if grown {
		logger().Debug("surface grown", "from", old.Rect.Size(), "to", r.Size())
		s.notify(r)
	}
}

// grow returns src unchanged when it already covers size, otherwise a new
// background-filled buffer of the larger extent with src copied to its origin.
func grow(src *image.NRGBA, size image.Point, bg color.NRGBA) *image.NRGBA {
	cur := src.Rect.Size()
	want := maxPoint(cur, size)
	if want == cur {
		return src
	}
	dst := newBuffer(want, bg)
	draw.Copy(dst, image.Point{}, src, src.Rect, draw.Src, nil)
	return dst
}

func newBuffer(size image.Point, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}
