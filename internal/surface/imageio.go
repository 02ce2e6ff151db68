package surface

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type encodeFunc func(w io.Writer, img image.Image) error

var encoders = map[string]encodeFunc{
	"bmp": bmp.Encode,
	"gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	"jpeg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	},
	"png": png.Encode,
	"tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	},
}

var formatAliases = map[string]string{
	"jpg": "jpeg",
	"tif": "tiff",
}

// Formats lists the format identifiers accepted by Save, sorted.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadExtensions lists the file extensions Load can decode, with the dot.
func LoadExtensions() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}
}

// FormatFromPath derives a save format from the file extension of path.
func FormatFromPath(path string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return normalizeFormat(ext)
}

func normalizeFormat(format string) (string, bool) {
	f := strings.ToLower(strings.TrimSpace(format))
	if alias, ok := formatAliases[f]; ok {
		f = alias
	}
	_, ok := encoders[f]
	return f, ok
}

// Load replaces the buffer with the image stored at path. The format is
// detected from the content. The new buffer is at least as large as the
// visible size. The image is copied at the origin, pixels included, and the
// rest is filled with the background.
// On failure the surface is left untouched and a *LoadError is returned.
func (s *Surface) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return s.loadFailed(&LoadError{Path: path, Err: err})
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return s.loadFailed(&LoadError{Path: path, Err: err})
	}
	s.replace(src)
	logger().Info("image loaded", "path", path, "format", format, "size", src.Bounds().Size())
	return nil
}

// LoadFrom is Load for an already opened stream.
func (s *Surface) LoadFrom(r io.Reader) error {
	src, format, err := image.Decode(r)
	if err != nil {
		return s.loadFailed(&LoadError{Err: err})
	}
	s.replace(src)
	logger().Info("image loaded", "format", format, "size", src.Bounds().Size())
	return nil
}

func (s *Surface) loadFailed(err *LoadError) error {
	logger().Warn("image load failed", "path", err.Path, "err", err.Err)
	return err
}

func (s *Surface) replace(src image.Image) {
	b := src.Bounds()

	s.mu.Lock()
	dst := newBuffer(maxPoint(b.Size(), s.view), s.background)
	draw.Draw(dst, b.Sub(b.Min), src, b.Min, draw.Src)
	s.img = dst
	s.gen++
	s.modified = false
	r := dst.Rect
	s.mu.Unlock()

	s.notify(r)
}

// Save encodes the buffer in format and writes it to path. The data goes to
// a temporary file next to path which is then renamed over it, so a failed
// encode leaves any existing file intact. On success the surface is marked
// unmodified; on failure it is left untouched and a *SaveError is returned.
func (s *Surface) Save(path, format string) error {
	name, ok := normalizeFormat(format)
	if !ok {
		return s.saveFailed(&SaveError{Path: path, Format: format, Err: ErrUnsupportedFormat})
	}
	img, gen := s.snapshotGen()

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return s.saveFailed(&SaveError{Path: path, Format: name, Err: err})
	}
	if err := encoders[name](f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return s.saveFailed(&SaveError{Path: path, Format: name, Err: err})
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return s.saveFailed(&SaveError{Path: path, Format: name, Err: err})
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return s.saveFailed(&SaveError{Path: path, Format: name, Err: err})
	}

	s.markSaved(gen)
	logger().Info("image saved", "path", path, "format", name, "size", img.Rect.Size())
	return nil
}

// SaveTo is Save for an already opened stream. The surface is marked
// unmodified once the encoder returns; use SaveAndClose when the stream can
// still fail on close.
func (s *Surface) SaveTo(w io.Writer, format string) error {
	name, ok := normalizeFormat(format)
	if !ok {
		return s.saveFailed(&SaveError{Format: format, Err: ErrUnsupportedFormat})
	}
	img, gen := s.snapshotGen()
	if err := encoders[name](w, img); err != nil {
		return s.saveFailed(&SaveError{Format: name, Err: err})
	}
	s.markSaved(gen)
	logger().Info("image saved", "format", name, "size", img.Rect.Size())
	return nil
}

// SaveAndClose encodes the buffer to wc and closes it. The surface is marked
// unmodified only when both the encode and the close succeed. wc is closed
// in every case.
func (s *Surface) SaveAndClose(wc io.WriteCloser, format string) error {
	name, ok := normalizeFormat(format)
	if !ok {
		wc.Close()
		return s.saveFailed(&SaveError{Format: format, Err: ErrUnsupportedFormat})
	}
	img, gen := s.snapshotGen()
	if err := encoders[name](wc, img); err != nil {
		wc.Close()
		return s.saveFailed(&SaveError{Format: name, Err: err})
	}
	if err := wc.Close(); err != nil {
		return s.saveFailed(&SaveError{Format: name, Err: err})
	}
	s.markSaved(gen)
	logger().Info("image saved", "format", name, "size", img.Rect.Size())
	return nil
}

func (s *Surface) saveFailed(err *SaveError) error {
	logger().Warn("image save failed", "path", err.Path, "format", err.Format, "err", err.Err)
	return err
}

func (s *Surface) snapshotGen() (*image.NRGBA, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBuffer(s.img), s.gen
}

// markSaved clears the modified flag unless the buffer changed after the
// copy that was written was taken.
func (s *Surface) markSaved(gen uint64) {
	s.mu.Lock()
	if s.gen == gen {
		s.modified = false
	}
	s.mu.Unlock()
}
