package vecpath

// Position gives a shape an origin in space. Geometry is expressed relative
// to the origin; none of the measuring functions apply it.
type Position struct {
	X float64
	Y float64
}

// Move sets the origin to (x, y).
func (pos *Position) Move(x, y float64) {
	pos.X = x
	pos.Y = y
}

// Origin returns the origin as a vector.
func (pos Position) Origin() Vector {
	return Vector{X: pos.X, Y: pos.Y}
}
