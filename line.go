package vecpath

// Line represents a straight segment between two points. The segments of a
// [Path] are Lines between consecutive effective points, curves included.
type Line struct {
	/// The line's start point.
	P0 Vector
	/// The line's end point.
	P1 Vector
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Length()
}

// Eval returns the point t of the way from P0 to P1.
func (l Line) Eval(t float64) Vector {
	return l.P0.Add(l.P1.Sub(l.P0).VectorAt(t))
}

func (l Line) Start() Vector { return l.P0 }
func (l Line) End() Vector   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
