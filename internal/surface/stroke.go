package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// BeginStroke starts a stroke at p. Nothing is drawn until the stroke is
// continued or ended.
func (s *Surface) BeginStroke(p image.Point) {
	s.mu.Lock()
	s.scribbling = true
	s.lastPoint = p
	s.mu.Unlock()
}

// ContinueStroke connects the previous sample to p with the current pen.
// It must be called for every pointer sample so fast motion leaves no gaps.
// Calls outside a stroke are ignored.
func (s *Surface) ContinueStroke(p image.Point) {
	s.mu.Lock()
	if !s.scribbling {
		s.mu.Unlock()
		return
	}
	r := s.lineTo(p)
	s.mu.Unlock()
	s.notify(r)
}

// EndStroke draws the final segment to p and finishes the stroke. Ending at
// the starting point with no movement leaves a dot of the pen width.
func (s *Surface) EndStroke(p image.Point) {
	s.mu.Lock()
	if !s.scribbling {
		s.mu.Unlock()
		return
	}
	r := s.lineTo(p)
	s.scribbling = false
	s.mu.Unlock()
	s.notify(r)
}

func (s *Surface) lineTo(p image.Point) image.Rectangle {
	r := drawSegment(s.img, s.lastPoint, p, s.penWidth, s.penColor)
	if !r.Empty() {
		s.gen++
		s.modified = true
	}
	s.lastPoint = p
	return r
}

// drawSegment paints every pixel whose center lies within width/2 of the
// segment p0-p1. The covered shape is a capsule, which gives round caps and,
// across consecutive segments, round joins. A zero-length segment is a disc.
// It returns the area that was touched, empty when no pixel was covered.
func drawSegment(dst *image.NRGBA, p0, p1 image.Point, width int, c color.NRGBA) image.Rectangle {
	radius := float64(width) / 2
	pad := int(math.Ceil(radius))
	area := image.Rect(p0.X, p0.Y, p1.X, p1.Y)
	area.Min = area.Min.Sub(image.Pt(pad, pad))
	area.Max = area.Max.Add(image.Pt(pad+1, pad+1))
	area = area.Intersect(dst.Rect)
	if area.Empty() {
		return image.Rectangle{}
	}

	x0, y0 := float64(p0.X), float64(p0.Y)
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	lenSq := dx*dx + dy*dy
	r2 := radius * radius

	hit := false
	mask := image.NewAlpha(area)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		off := mask.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x++ {
			if distSq(float64(x), float64(y), x0, y0, dx, dy, lenSq) <= r2 {
				mask.Pix[off] = 0xff
				hit = true
			}
			off++
		}
	}
	if !hit {
		return image.Rectangle{}
	}
	draw.DrawMask(dst, area, image.NewUniform(c), image.Point{}, mask, area.Min, draw.Over)
	return area
}

// distSq is the squared distance from (px, py) to the segment starting at
// (x0, y0) with direction (dx, dy).
func distSq(px, py, x0, y0, dx, dy, lenSq float64) float64 {
	t := 0.0
	if lenSq > 0 {
		t = ((px-x0)*dx + (py-y0)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	ex := x0 + t*dx - px
	ey := y0 + t*dy - py
	return ex*ex + ey*ey
}
