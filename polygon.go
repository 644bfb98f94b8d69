package vecpath

import (
	"iter"
	"slices"
)

// Polygon is an ordered sequence of points, the output of [Path.ToPolygons].
// The polygon is implicitly closed from its last point back to its first.
type Polygon struct {
	Position
	Style

	vectors []Vector
}

// NewPolygon returns an empty polygon with its origin at (x, y).
func NewPolygon(x, y float64) *Polygon {
	return &Polygon{Position: Position{X: x, Y: y}}
}

// LineTo appends the point (x, y).
func (p *Polygon) LineTo(x, y float64) *Polygon {
	p.vectors = append(p.vectors, Vec(x, y))
	return p
}

// Len returns the number of points.
func (p *Polygon) Len() int { return len(p.vectors) }

// Vector returns the point at index i. It panics if i is out of range.
func (p *Polygon) Vector(i int) Vector { return p.vectors[i] }

// Vectors returns an iterator over the polygon's points.
func (p *Polygon) Vectors() iter.Seq[Vector] { return slices.Values(p.vectors) }

// Copy returns a deep copy of the polygon.
func (p *Polygon) Copy() *Polygon {
	out := &Polygon{vectors: slices.Clone(p.vectors)}
	copyAttrs(&out.Position, &out.Style, p.Position, p.Style)
	return out
}

// Scale scales every point and the style by f, in place.
func (p *Polygon) Scale(f float64) *Polygon {
	p.Style.Scale(f)
	for i := range p.vectors {
		p.vectors[i] = p.vectors[i].Mul(f)
	}
	return p
}

// Bounds returns the rectangle enclosing all points. It returns the zero Rect
// for empty polygons.
func (p *Polygon) Bounds() Rect {
	box, _ := boundsOf(p.Vectors())
	return box
}

// Perimeter returns the length of the closed outline through all points.
func (p *Polygon) Perimeter() float64 {
	if len(p.vectors) < 2 {
		return 0
	}
	var sum float64
	prev := p.vectors[len(p.vectors)-1]
	for _, v := range p.vectors {
		sum += prev.Distance(v)
		prev = v
	}
	return sum
}
