package vecpath

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jinzhu/copier"
)

// FillRule selects how the interior of a self-intersecting shape is determined.
// Geometry code carries it through unchanged.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// ParseFillRule parses the SVG names of fill rules. The empty string is
// [NonZero].
func ParseFillRule(s string) (FillRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nonzero":
		return NonZero, nil
	case "evenodd":
		return EvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

// Paint is a fill or stroke colour. The zero value paints nothing.
type Paint struct {
	Color color.NRGBA
	Set   bool
}

// Solid returns a Paint of colour c.
func Solid(c color.NRGBA) Paint {
	return Paint{Color: c, Set: true}
}

// Style holds the visual attributes of a shape.
type Style struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	// Dash lengths, alternating between drawn and skipped.
	StrokeDash []float64
	FillRule   FillRule
}

// Scale scales the style's lengths along with the geometry it is attached to.
func (st *Style) Scale(f float64) {
	st.StrokeWidth *= f
}

// copyAttrs duplicates the position and style of src into dst. Slices are
// copied, not shared.
func copyAttrs(dstPos *Position, dstStyle *Style, srcPos Position, srcStyle Style) {
	*dstPos = srcPos
	if err := copier.CopyWithOption(dstStyle, &srcStyle, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("copying style: %v", err))
	}
}
