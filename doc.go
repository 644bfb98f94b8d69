// Package vecpath models vector drawing paths: ordered programs of pen commands
// that can be measured, sampled, split into subpaths and discretized into
// polygons. It was designed for turning freeform outlines into fixed-spacing
// point sequences for plotters, cutters and other downstream renderers.
//
// # Anchors
//
// A [Path] is a sequence of [Anchor] values. Each anchor is one of four
// commands:
//   - [MoveCommand] moves the pen without drawing, starting a new subpath
//   - [LineCommand] draws a straight line
//   - [CurveCommand] draws a cubic Bézier through two control points
//   - [CloseCommand] draws a line back to the start of the current subpath
//
// Every anchor except close has an effective point, the point the pen rests on
// after the command; see [Anchor.EndPoint]. A close anchor's point is the start
// of its subpath, which the measuring functions substitute as needed.
//
// Paths are built with [Path.MoveTo], [Path.LineTo], [Path.CurveTo] and
// [Path.ClosePath]. Drawing on an empty path implicitly starts it with a move
// to (0, 0).
//
// # Subpaths
//
// A path is split into subpaths at every move and after every close. Use
// [Path.Subpaths] to obtain them as independent paths.
//
// # Measuring
//
// [Path.Length], [Path.VectorAtLength] and [Path.VectorAt] measure a path along
// the straight segments between consecutive effective points; see
// [Path.Segments]. Curves contribute the distance between their end points,
// not their true arc length. This keeps lengths cheap and exactly linear under
// scaling, and it means that sampling a curve places points on its chord.
//
// # Polygons
//
// [Path.ToPolygons] samples every subpath at a fixed spacing and returns one
// [Polygon] per subpath.
//
// # Styling and position
//
// Paths and polygons embed a [Position] (their origin) and a [Style] (fill,
// stroke and fill rule). Neither affects the geometry functions, but both are
// carried through copies, subpaths and polygons.
package vecpath
