package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

const mmPerInch = 25.4

// Options controls how a canvas snapshot is laid out on the printed page.
type Options struct {
	Orientation string  // "P" or "L"; portrait when empty
	PageSize    string  // gofpdf size name such as "A4" or "Letter"; A4 when empty
	Title       string  // document title metadata
	DPI         float64 // upper bound on the embedded raster resolution; 150 when zero
}

func (o Options) withDefaults() Options {
	if o.Orientation == "" {
		o.Orientation = "P"
	}
	if o.PageSize == "" {
		o.PageSize = "A4"
	}
	if o.DPI <= 0 {
		o.DPI = 150
	}
	return o
}

// PrintPDF writes img as a one-page PDF to path.
func PrintPDF(path string, img image.Image, opts Options) error {
	p, err := layout(img, opts)
	if err != nil {
		return err
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// WritePDF is PrintPDF for an arbitrary writer.
func WritePDF(w io.Writer, img image.Image, opts Options) error {
	p, err := layout(img, opts)
	if err != nil {
		return err
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// layout places img inside the page margins, scaled to fill the printable
// area while keeping its aspect ratio.
func layout(img image.Image, opts Options) (*gofpdf.Fpdf, error) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil, errors.New("print: empty image")
	}
	opts = opts.withDefaults()

	p := gofpdf.New(opts.Orientation, "mm", opts.PageSize, "")
	if opts.Title != "" {
		p.SetTitle(opts.Title, true)
	}
	p.SetCreator("Scribble", true)
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	left, top, right, bottom := p.GetMargins()
	areaW, areaH := pageW-left-right, pageH-top-bottom
	scale := math.Min(areaW/float64(size.X), areaH/float64(size.Y))
	w, h := float64(size.X)*scale, float64(size.Y)*scale

	raster := fitRaster(img, w, h, opts.DPI)
	var buf bytes.Buffer
	if err := png.Encode(&buf, raster); err != nil {
		return nil, fmt.Errorf("print: encode page image: %w", err)
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opt, &buf)
	p.ImageOptions("canvas", left, top, w, h, false, opt, 0, "")
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return p, nil
}

// fitRaster downsamples img when it carries more pixels than dpi allows over
// a w x h millimetre box. Smaller images are embedded as they are.
func fitRaster(img image.Image, w, h, dpi float64) image.Image {
	maxW := max(1, int(math.Round(w*dpi/mmPerInch)))
	maxH := max(1, int(math.Round(h*dpi/mmPerInch)))
	size := img.Bounds().Size()
	if size.X <= maxW && size.Y <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
