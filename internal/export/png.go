package export

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"honnef.co/go/vecpath"
)

// writePNG fills every polygon that has a fill colour onto a transparent
// canvas. Strokes aren't drawn. The rasterizer accumulates coverage, which
// matches the nonzero rule for simple polygons.
func writePNG(w io.Writer, polys []*vecpath.Polygon, opts Options) error {
	pg := newPage(polys, opts)
	wd, ht, err := pg.pixels()
	if err != nil {
		return err
	}
	img := image.NewNRGBA(image.Rect(0, 0, wd, ht))

	for _, poly := range polys {
		if poly.Len() < 3 || !poly.Fill.Set {
			continue
		}
		r := vector.NewRasterizer(wd, ht)
		r.DrawOp = draw.Over
		for i := range poly.Len() {
			p := pg.point(poly, poly.Vector(i))
			if i == 0 {
				r.MoveTo(float32(p.X), float32(p.Y))
			} else {
				r.LineTo(float32(p.X), float32(p.Y))
			}
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(poly.Fill.Color), image.Point{})
	}
	return png.Encode(w, img)
}
