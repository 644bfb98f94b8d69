package vecpath

import (
	"fmt"
	"math"
)

// Vector is a 2D value used both as a position and as a displacement.
type Vector struct {
	X float64
	Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Splat returns the vector's x and y coordinates.
func (v Vector) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vector) Add(o Vector) Vector {
	return Vector{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub computes v−o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vector) Mul(f float64) Vector {
	return Vector{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vector) Negate() Vector {
	return Vector{
		X: -v.X,
		Y: -v.Y,
	}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Length2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector.Length].
func (v Vector) Length2() float64 {
	return v.Dot(v)
}

// VectorAt treats v as a displacement and returns the point that lies t of the
// way along it, starting from the origin. t is usually in [0, 1].
func (v Vector) VectorAt(t float64) Vector {
	return v.Mul(t)
}

// Lerp linearly interpolates between two vectors.
func (v Vector) Lerp(o Vector, t float64) Vector {
	// v + t * (o-v)
	return v.Add(o.Sub(v).VectorAt(t))
}

// Distance returns the euclidean distance between two points.
func (v Vector) Distance(o Vector) float64 {
	return o.Sub(v).Length()
}

func (v Vector) Transform(aff Affine) Vector {
	return Vector{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}

// Round returns a new vector with x and y rounded to the nearest integers.
func (v Vector) Round() Vector {
	return Vector{
		X: math.Round(v.X),
		Y: math.Round(v.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
