package vecpath

import "fmt"

// Command is the pen command of an [Anchor].
type Command int

const (
	// Move the pen to Vec1 without drawing, starting a new subpath.
	MoveCommand Command = iota + 1
	// Draw a straight segment ending at Vec1.
	LineCommand
	// Draw a cubic Bézier with control points Vec1 and Vec2, ending at Vec3.
	CurveCommand
	// Close the current subpath back to its starting point.
	CloseCommand
)

func (c Command) String() string {
	switch c {
	case MoveCommand:
		return "move"
	case LineCommand:
		return "line"
	case CurveCommand:
		return "curve"
	case CloseCommand:
		return "close"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// An Anchor is a single command in a path's drawing program together with the
// vectors it needs. Vectors that a command doesn't use are zero.
//
// Anchor is a value type. Assigning an Anchor copies it, and no two anchors ever
// share their vectors.
type Anchor struct {
	Command Command
	Vec1    Vector
	Vec2    Vector
	Vec3    Vector
}

func MoveTo(v Vector) Anchor {
	return Anchor{Command: MoveCommand, Vec1: v}
}

func LineTo(v Vector) Anchor {
	return Anchor{Command: LineCommand, Vec1: v}
}

func CurveTo(c1, c2, end Vector) Anchor {
	return Anchor{Command: CurveCommand, Vec1: c1, Vec2: c2, Vec3: end}
}

func ClosePath() Anchor {
	return Anchor{Command: CloseCommand}
}

func (a Anchor) String() string {
	switch a.Command {
	case MoveCommand, LineCommand:
		return fmt.Sprintf("%s%s", a.Command, a.Vec1)
	case CurveCommand:
		return fmt.Sprintf("%s(%s, %s, %s)", a.Command, a.Vec1, a.Vec2, a.Vec3)
	case CloseCommand:
		return "close"
	default:
		return "InvalidAnchor"
	}
}

// EndPoint returns the anchor's effective point: the point the pen rests on
// after the command. It reports false for close anchors, whose end point
// depends on the enclosing subpath.
func (a Anchor) EndPoint() (Vector, bool) {
	switch a.Command {
	case MoveCommand, LineCommand:
		return a.Vec1, true
	case CurveCommand:
		return a.Vec3, true
	default:
		return Vector{}, false
	}
}

// resolve returns the effective point, using start for close anchors.
func (a Anchor) resolve(start Vector) Vector {
	if pt, ok := a.EndPoint(); ok {
		return pt
	}
	return start
}

// vectors returns the vectors the command uses.
func (a Anchor) vectors() ([3]Vector, int) {
	switch a.Command {
	case MoveCommand, LineCommand:
		return [3]Vector{a.Vec1}, 1
	case CurveCommand:
		return [3]Vector{a.Vec1, a.Vec2, a.Vec3}, 3
	case CloseCommand:
		return [3]Vector{}, 0
	default:
		panic(fmt.Sprintf("invalid anchor command %v", a.Command))
	}
}

// Multiply returns the anchor with all of its vectors scaled by f.
func (a Anchor) Multiply(f float64) Anchor {
	a.Vec1 = a.Vec1.Mul(f)
	a.Vec2 = a.Vec2.Mul(f)
	a.Vec3 = a.Vec3.Mul(f)
	return a
}

func (a Anchor) Transform(aff Affine) Anchor {
	switch a.Command {
	case MoveCommand:
		return MoveTo(a.Vec1.Transform(aff))
	case LineCommand:
		return LineTo(a.Vec1.Transform(aff))
	case CurveCommand:
		return CurveTo(a.Vec1.Transform(aff), a.Vec2.Transform(aff), a.Vec3.Transform(aff))
	case CloseCommand:
		return ClosePath()
	default:
		panic(fmt.Sprintf("invalid anchor command %v", a.Command))
	}
}

func (a Anchor) IsNaN() bool {
	return a.Vec1.IsNaN() ||
		a.Vec2.IsNaN() ||
		a.Vec3.IsNaN()
}
