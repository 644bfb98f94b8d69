package vecpath

// The constant for approximating a quarter circle with a single cubic Bézier.
// See "Approximate a circle with cubic Bézier curves" by Spencer Mortensen.
const quarterArc = 0.551915024494

// RectPath returns a closed path tracing the rectangle with corner (x, y),
// width w and height h.
func RectPath(x, y, w, h float64) *Path {
	return NewPath(0, 0).
		MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		ClosePath()
}

// CirclePath returns a closed path approximating the circle of radius r around
// (cx, cy) with four cubic Béziers.
func CirclePath(cx, cy, r float64) *Path {
	return EllipsePath(cx, cy, r, r)
}

// EllipsePath returns a closed path approximating the axis-aligned ellipse
// with radii rx and ry around (cx, cy) with four cubic Béziers.
func EllipsePath(cx, cy, rx, ry float64) *Path {
	ox := rx * quarterArc
	oy := ry * quarterArc
	return NewPath(0, 0).
		MoveTo(cx+rx, cy).
		CurveTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry).
		CurveTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy).
		CurveTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry).
		CurveTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy).
		ClosePath()
}
