package vecpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for the SVG writers.
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// SVG converts the path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p *Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the path to a string of SVG path commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func (p *Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	f := opts.format
	for i, a := range p.anchors {
		if i > 0 {
			writef(" ")
		}
		switch a.Command {
		case MoveCommand:
			writef("M%s,%s", f(a.Vec1.X), f(a.Vec1.Y))
		case LineCommand:
			writef("L%s,%s", f(a.Vec1.X), f(a.Vec1.Y))
		case CurveCommand:
			writef("C%s,%s %s,%s %s,%s",
				f(a.Vec1.X), f(a.Vec1.Y),
				f(a.Vec2.X), f(a.Vec2.Y),
				f(a.Vec3.X), f(a.Vec3.Y))
		case CloseCommand:
			writef("Z")
		default:
			panic("unreachable")
		}
		if err != nil {
			return err
		}
	}
	return err
}

// SVGPoints formats the polygon's points as the value of an SVG points
// attribute.
func (p *Polygon) SVGPoints(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVGPoints(sb, opts)
	return sb.String()
}

// WriteSVGPoints writes the polygon's points to w, in the format of an SVG
// points attribute.
func (p *Polygon) WriteSVGPoints(w io.Writer, opts SVGOptions) error {
	for i, v := range p.vectors {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s,%s", sep, opts.format(v.X), opts.format(v.Y)); err != nil {
			return err
		}
	}
	return nil
}
