package export

import (
	"fmt"
	"io"
	"strings"

	"honnef.co/go/vecpath"
	"honnef.co/go/vecpath/internal/document"
)

func writeSVG(w io.Writer, polys []*vecpath.Polygon, opts Options) error {
	pg := newPage(polys, opts)
	so := vecpath.SVGOptions{MaxPrecision: opts.MaxPrecision}

	var err error
	wf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	pw, ph := pg.size().Splat()
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", pw, ph, pw, ph)
	wf("  <g transform=\"translate(%g %g) scale(%g) translate(%g %g)\">\n",
		pg.margin, pg.margin, pg.scale, 0-pg.box.X0, 0-pg.box.Y0)
	for _, poly := range polys {
		if poly.Len() == 0 {
			continue
		}
		wf("    <polygon transform=\"translate(%g %g)\" %s points=\"", poly.X, poly.Y, svgStyle(poly.Style))
		if err == nil {
			err = poly.WriteSVGPoints(w, so)
		}
		wf("\"/>\n")
	}
	wf("  </g>\n</svg>\n")
	return err
}

func svgStyle(st vecpath.Style) string {
	var sb strings.Builder
	if st.Fill.Set {
		fmt.Fprintf(&sb, "fill=%q", document.HexColor(st.Fill.Color))
		if st.FillRule == vecpath.EvenOdd {
			sb.WriteString(` fill-rule="evenodd"`)
		}
	} else {
		sb.WriteString(`fill="none"`)
	}
	if st.Stroke.Set {
		fmt.Fprintf(&sb, " stroke=%q stroke-width=\"%g\"", document.HexColor(st.Stroke.Color), st.StrokeWidth)
		if len(st.StrokeDash) > 0 {
			sb.WriteString(` stroke-dasharray="`)
			for i, d := range st.StrokeDash {
				if i > 0 {
					sb.WriteString(" ")
				}
				fmt.Fprintf(&sb, "%g", d)
			}
			sb.WriteString(`"`)
		}
	}
	return sb.String()
}
