package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"honnef.co/go/vecpath"
)

// writePDF draws one page in points. gofpdf has no even-odd fill, so every
// polygon is filled with the nonzero rule.
func writePDF(w io.Writer, polys []*vecpath.Polygon, opts Options) error {
	pg := newPage(polys, opts)
	pw, ph := pg.size().Splat()
	size := gofpdf.SizeType{Wd: max(pw, 1), Ht: max(ph, 1)}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    size,
	})
	pdf.SetCreator("vecpath", false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("", size)

	for _, poly := range polys {
		if poly.Len() < 2 {
			continue
		}
		style := pdfStyle(pdf, poly.Style, pg.scale)
		if style == "" {
			continue
		}
		pts := make([]gofpdf.PointType, 0, poly.Len())
		for v := range poly.Vectors() {
			p := pg.point(poly, v)
			pts = append(pts, gofpdf.PointType{X: p.X, Y: p.Y})
		}
		pdf.Polygon(pts, style)
	}
	return pdf.Output(w)
}

// pdfStyle configures the colours and line of st and returns the matching
// gofpdf style string. It returns "" if st paints nothing.
func pdfStyle(pdf *gofpdf.Fpdf, st vecpath.Style, scale float64) string {
	var style string
	if st.Fill.Set {
		c := st.Fill.Color
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		style += "F"
	}
	if st.Stroke.Set && st.StrokeWidth > 0 {
		c := st.Stroke.Color
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetLineWidth(st.StrokeWidth * scale)
		dash := make([]float64, len(st.StrokeDash))
		for i, d := range st.StrokeDash {
			dash[i] = d * scale
		}
		pdf.SetDashPattern(dash, 0)
		style += "D"
	}
	return style
}
