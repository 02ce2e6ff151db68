package surface

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is wrapped by a SaveError when the requested format
// has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// LoadError reports a failed Load. The surface is unchanged.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load image: %v", e.Err)
	}
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed Save. The surface is unchanged.
type SaveError struct {
	Path   string
	Format string
	Err    error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("save image as %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("save image %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
