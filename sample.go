package vecpath

import (
	"log/slog"
	"math"
)

// MaxPolygonPoints is the largest number of points [Path.ToPolygons] samples
// from a single subpath.
const MaxPolygonPoints = 1 << 20

// PolygonOptions configures [Path.ToPolygons].
type PolygonOptions struct {
	// The distance between consecutive points along each subpath. Non-positive
	// values produce no polygons.
	Spacing float64
}

// ToPolygons discretizes the path into one polygon per subpath, sampling a
// point every opts.Spacing units of length, starting at the beginning of the
// subpath. A subpath of length L yields the points at 0, s, 2s, … that lie
// strictly below L, so the end of the subpath is never sampled.
//
// Subpaths too short to be sampled still produce an empty polygon, so the
// result has exactly one polygon per subpath. So do subpaths that would need
// more than [MaxPolygonPoints] points or whose length isn't finite. Each
// polygon copies the path's position and style.
func (p *Path) ToPolygons(opts PolygonOptions) []*Polygon {
	spacing := opts.Spacing
	if !(spacing > 0) {
		Logger().Debug("not sampling path", slog.Float64("spacing", spacing))
		return nil
	}

	var polys []*Polygon
	for i, j := range subpathRanges(p.anchors) {
		poly := &Polygon{}
		copyAttrs(&poly.Position, &poly.Style, p.Position, p.Style)
		sampleSubpath(poly, p.anchors[i:j], spacing)
		polys = append(polys, poly)
	}
	return polys
}

// sampleSubpath appends the samples of a single subpath to poly. It walks the
// segments once, locating every sample the same way [Path.VectorAtLength]
// does.
func sampleSubpath(poly *Polygon, anchors []Anchor, spacing float64) {
	var (
		segs []Line
		lens []float64
		l    float64
	)
	subpathSegments(anchors, func(seg Line) bool {
		segLen := seg.Length()
		segs = append(segs, seg)
		lens = append(lens, segLen)
		l += segLen
		return true
	})

	n := math.Ceil(l / spacing)
	if math.IsNaN(n) || math.IsInf(n, 0) || n > MaxPolygonPoints {
		Logger().Debug("not sampling subpath",
			slog.Float64("length", l),
			slog.Float64("spacing", spacing))
		return
	}

	k, acc := 0, 0.0
	for i := range int(n) {
		d := float64(i) * spacing
		if !(d < l) {
			break
		}
		for k < len(segs) && !(acc+lens[k] > d) {
			acc += lens[k]
			k++
		}
		v := segs[len(segs)-1].P1
		if k < len(segs) {
			v = segs[k].Eval((d - acc) / lens[k])
		}
		poly.LineTo(v.X, v.Y)
	}
}
