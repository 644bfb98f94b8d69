package vecpath

import (
	"iter"
	"log/slog"
	"slices"
)

// Path is a vector drawing path: an ordered program of anchors that is drawn
// from first to last.
//
// Conceptually, a Path contains zero or more subpaths. A new subpath starts at
// every move anchor and right after every close anchor. A non-empty path always
// begins with a move: the builders insert a move to (0, 0) when a drawing
// command is added to an empty path.
//
// The builders mutate the path and return it, allowing calls to be chained:
//
//	p := NewPath(0, 0).MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10)
//
// Everything that derives a new path from an existing one, such as
// [Path.Copy] and [Path.Subpaths], returns paths that share no state with the
// original.
type Path struct {
	Position
	Style

	anchors []Anchor
}

// NewPath returns an empty path with its origin at (x, y).
func NewPath(x, y float64) *Path {
	return &Path{Position: Position{X: x, Y: y}}
}

// Push appends an anchor. If the path is empty and a isn't a move, a move to
// (0, 0) is inserted first.
func (p *Path) Push(a Anchor) *Path {
	if a.Command != MoveCommand {
		p.checkStartMove()
	}
	p.anchors = append(p.anchors, a)
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	return p.Push(MoveTo(Vec(x, y)))
}

// LineTo draws a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	return p.Push(LineTo(Vec(x, y)))
}

// CurveTo draws a cubic Bézier with the control points (c1x, c1y) and (c2x,
// c2y), ending at (x, y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	return p.Push(CurveTo(Vec(c1x, c1y), Vec(c2x, c2y), Vec(x, y)))
}

// ClosePath closes the current subpath back to its starting point.
func (p *Path) ClosePath() *Path {
	return p.Push(ClosePath())
}

// Paths must start with a move. checkStartMove inserts one on empty paths.
func (p *Path) checkStartMove() {
	if len(p.anchors) == 0 {
		Logger().Debug("inserting implicit move", slog.String("at", Vector{}.String()))
		p.anchors = append(p.anchors, MoveTo(Vector{}))
	}
}

// SetFillRule sets the fill rule and returns the path.
func (p *Path) SetFillRule(r FillRule) *Path {
	p.FillRule = r
	return p
}

// Len returns the number of anchors.
func (p *Path) Len() int { return len(p.anchors) }

// Anchor returns the anchor at index i. It panics if i is out of range.
func (p *Path) Anchor(i int) Anchor { return p.anchors[i] }

// Anchors returns an iterator over the path's anchors, in drawing order.
func (p *Path) Anchors() iter.Seq[Anchor] { return slices.Values(p.anchors) }

// StartVector returns the point the path starts at. This is the first anchor's
// point if it is a move, and the zero vector otherwise.
func (p *Path) StartVector() Vector {
	return startOf(p.anchors)
}

func startOf(anchors []Anchor) Vector {
	if len(anchors) > 0 && anchors[0].Command == MoveCommand {
		return anchors[0].Vec1
	}
	return Vector{}
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	return p.slice(0, len(p.anchors))
}

// slice returns a deep copy of the path that only holds the anchors in
// [i, j).
func (p *Path) slice(i, j int) *Path {
	out := &Path{anchors: slices.Clone(p.anchors[i:j:j])}
	copyAttrs(&out.Position, &out.Style, p.Position, p.Style)
	return out
}

// Scale scales every anchor and the style by f, in place.
func (p *Path) Scale(f float64) *Path {
	p.Style.Scale(f)
	for i := range p.anchors {
		p.anchors[i] = p.anchors[i].Multiply(f)
	}
	return p
}

// Transform returns a copy of the path with an affine transformation applied
// to every anchor. See [Path.ApplyTransform] for a version that modifies the
// path in place.
func (p *Path) Transform(aff Affine) *Path {
	out := p.Copy()
	out.ApplyTransform(aff)
	return out
}

// ApplyTransform destructively applies an affine transformation to the path.
// Stroke widths are scaled when the transformation scales uniformly.
func (p *Path) ApplyTransform(aff Affine) {
	for i := range p.anchors {
		p.anchors[i] = p.anchors[i].Transform(aff)
	}
	if f, ok := aff.uniformScale(); ok {
		p.Style.Scale(f)
	}
}

// ControlBox returns a rectangle that encloses every vector of the path,
// control points included. It returns the zero Rect for paths without anchors.
func (p *Path) ControlBox() Rect {
	box, _ := boundsOf(func(yield func(Vector) bool) {
		for _, a := range p.anchors {
			vecs, n := a.vectors()
			for _, v := range vecs[:n] {
				if !yield(v) {
					return
				}
			}
		}
	})
	return box
}

func (p *Path) IsNaN() bool {
	for i := range p.anchors {
		if p.anchors[i].IsNaN() {
			return true
		}
	}
	return false
}
