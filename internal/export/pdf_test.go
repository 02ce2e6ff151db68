package export

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 0x20
		img.Pix[i+3] = 0xff
	}
	return img
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, solid(500, 500), Options{Title: "untitled"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "/Image")
}

func TestPrintPDF_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.pdf")
	require.NoError(t, PrintPDF(path, solid(300, 120), Options{Orientation: "L", PageSize: "Letter"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPrintPDF_EmptyImage(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, image.NewNRGBA(image.Rectangle{}), Options{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestFitRaster(t *testing.T) {
	small := solid(100, 50)
	assert.Same(t, small, fitRaster(small, 200, 100, 150).(*image.NRGBA))

	// 100mm at 25.4 dpi is 100 pixels.
	big := solid(1000, 400)
	got := fitRaster(big, 100, 40, mmPerInch)
	assert.Equal(t, image.Pt(100, 40), got.Bounds().Size())
	assert.Equal(t, color.NRGBA{R: 0x20, A: 0xff}, color.NRGBAModel.Convert(got.At(50, 20)))
}
