package vecpath

import (
	"fmt"
	"math"
)

// Size is the extent of a rectangle or page.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

func (sz Size) Area() float64 {
	return sz.Width * sz.Height
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{Width: sz.Width * f, Height: sz.Height * f}
}

// Pad returns the size of a rectangle of size sz with a margin of m on every
// side.
func (sz Size) Pad(m float64) Size {
	return Size{Width: sz.Width + 2*m, Height: sz.Height + 2*m}
}

// Ceil returns a new size with width and height rounded up to the nearest integers.
func (sz Size) Ceil() Size {
	return Size{Width: math.Ceil(sz.Width), Height: math.Ceil(sz.Height)}
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
