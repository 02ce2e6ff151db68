package surface

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResize_GrowPreservesPixels(t *testing.T) {
	assert := assert.New(t)

	s := New(30, 20, WithPenColor(black), WithPenWidth(4))
	s.BeginStroke(image.Pt(0, 0))
	s.ContinueStroke(image.Pt(29, 19))
	s.EndStroke(image.Pt(5, 18))
	before := s.Snapshot()
	modified := s.IsModified()

	s.Resize(64, 48)
	after := s.Snapshot()
	require.Equal(t, image.Pt(64, 48), after.Rect.Size())

	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if x < 30 && y < 20 {
				assert.Equal(before.NRGBAAt(x, y), after.NRGBAAt(x, y), "pixel %d,%d moved", x, y)
			} else {
				assert.Equal(DefaultBackground, after.NRGBAAt(x, y), "new pixel %d,%d", x, y)
			}
		}
	}
	assert.Equal(modified, s.IsModified(), "resize must not touch the modified flag")
}

func TestResize_OneAxis(t *testing.T) {
	s := New(30, 20)
	s.Resize(10, 50)
	assert.Equal(t, image.Pt(30, 50), s.Size())
	s.Resize(40, 5)
	assert.Equal(t, image.Pt(40, 50), s.Size())
}

func TestResize_ShrinkKeepsContent(t *testing.T) {
	s := New(50, 50, WithPenColor(black))
	s.BeginStroke(image.Pt(45, 45))
	s.EndStroke(image.Pt(45, 45))

	s.Resize(10, 10)
	assert.Equal(t, image.Pt(50, 50), s.Size())
	s.Resize(50, 50)
	assert.Equal(t, black, s.Snapshot().NRGBAAt(45, 45))
}

func TestResize_SameSizeKeepsBuffer(t *testing.T) {
	s := New(20, 20)
	before := s.img
	s.Resize(20, 20)
	assert.Same(t, before, s.img)
}
