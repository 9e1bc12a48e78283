// Package render draws band structures and Fermi-surface samples with
// gonum.org/v1/plot.
//
// The numerical packages return plain data; render is the only place that
// knows about figures, ticks and file formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/lt"
)

var (
	// ErrFormat is returned for an output format gonum/plot cannot encode.
	ErrFormat = errors.New("render: unsupported format")

	// ErrNoData is returned when there is nothing to draw.
	ErrNoData = errors.New("render: nothing to draw")
)

// Renderer turns results into an encoded figure.
type Renderer interface {
	Bands(bs *lt.Bandstructure, w io.Writer) error
	FermiSurface(pts []fermi.Point, w io.Writer) error
}

// formats accepted by plot.Plot.WriterTo.
var formats = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "tif": {}, "tiff": {},
	"svg": {}, "pdf": {}, "eps": {},
}

// Default canvas.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// FormatFromPath returns the lower-cased extension of path without the dot.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func checkFormat(format string) error {
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("%q: %w", format, ErrFormat)
	}

	return nil
}
