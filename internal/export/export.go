// Package export renders sampled polygons as SVG, PDF, PNG or JSON.
//
// Every polygon is placed at its origin. The page is the union of all
// polygon bounds, scaled by Options.Scale and padded by Options.Margin on
// every side.
package export

import (
	"errors"
	"fmt"
	"io"

	"honnef.co/go/vecpath"
)

// ErrUnknownFormat is returned by [Write] for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrPageSize is returned when a raster page is infinite, NaN, or wider or
// taller than [MaxPixels].
var ErrPageSize = errors.New("unsupported page size")

// MaxPixels is the largest width and height of a PNG export.
const MaxPixels = 1 << 14

// Options controls the page layout shared by all formats.
type Options struct {
	// Maximum number of decimals in SVG and JSON coordinates. 0 means as
	// many as needed.
	MaxPrecision int
	// Padding around the drawing, in output units.
	Margin float64
	// Output units per path unit. Values <= 0 mean 1.
	Scale float64
}

// Write renders polys to w in the given format.
func Write(w io.Writer, format string, polys []*vecpath.Polygon, opts Options) error {
	var err error
	switch format {
	case "svg":
		err = writeSVG(w, polys, opts)
	case "pdf":
		err = writePDF(w, polys, opts)
	case "png":
		err = writePNG(w, polys, opts)
	case "json":
		err = writeJSON(w, polys, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// page maps path coordinates to output coordinates.
type page struct {
	box    vecpath.Rect
	scale  float64
	margin float64
}

func newPage(polys []*vecpath.Polygon, opts Options) page {
	pg := page{scale: opts.Scale, margin: max(opts.Margin, 0)}
	if !(pg.scale > 0) {
		pg.scale = 1
	}
	first := true
	for _, poly := range polys {
		if poly.Len() == 0 {
			continue
		}
		b := poly.Bounds().Translate(poly.Origin())
		if first {
			pg.box, first = b, false
		} else {
			pg.box = pg.box.Union(b)
		}
	}
	return pg
}

func (pg page) size() vecpath.Size {
	return pg.box.Size().Scale(pg.scale).Pad(pg.margin)
}

// pixels returns the page size rounded up to whole pixels, at least 1x1.
func (pg page) pixels() (int, int, error) {
	sz := pg.size().Ceil()
	w, h := sz.Splat()
	if sz.IsNaN() || !(w <= MaxPixels && h <= MaxPixels) {
		return 0, 0, fmt.Errorf("%w: %s pixels", ErrPageSize, sz)
	}
	return max(int(w), 1), max(int(h), 1), nil
}

// point maps a vertex of poly to output coordinates.
func (pg page) point(poly *vecpath.Polygon, v vecpath.Vector) vecpath.Vector {
	return v.Add(poly.Origin()).Sub(pg.box.Origin()).Mul(pg.scale).Add(vecpath.Vec(pg.margin, pg.margin))
}
