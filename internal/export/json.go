package export

import (
	"encoding/json"
	"io"
	"math"

	"honnef.co/go/vecpath"
	"honnef.co/go/vecpath/internal/document"
)

type polygonJSON struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Fill   string       `json:"fill,omitempty"`
	Stroke string       `json:"stroke,omitempty"`
	Points [][2]float64 `json:"points"`
}

// writeJSON writes the polygons in path coordinates; the page layout
// doesn't apply.
func writeJSON(w io.Writer, polys []*vecpath.Polygon, opts Options) error {
	round := func(f float64) float64 { return f }
	if opts.MaxPrecision > 0 {
		pow := math.Pow(10, float64(opts.MaxPrecision))
		round = func(f float64) float64 { return math.Round(f*pow) / pow }
	}

	out := struct {
		Polygons []polygonJSON `json:"polygons"`
	}{Polygons: make([]polygonJSON, 0, len(polys))}
	for _, poly := range polys {
		pj := polygonJSON{X: poly.X, Y: poly.Y, Points: make([][2]float64, 0, poly.Len())}
		if poly.Fill.Set {
			pj.Fill = document.HexColor(poly.Fill.Color)
		}
		if poly.Stroke.Set {
			pj.Stroke = document.HexColor(poly.Stroke.Color)
		}
		for v := range poly.Vectors() {
			pj.Points = append(pj.Points, [2]float64{round(v.X), round(v.Y)})
		}
		out.Polygons = append(out.Polygons, pj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
