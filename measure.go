package vecpath

import (
	"iter"
)

// subpathRanges yields the index range [i, j) of every subpath, in order.
//
// A split occurs at index k > lastSplit if anchor k is a move or anchor k-1 is
// a close. The remaining anchors form the last subpath. Empty ranges are never
// yielded.
func subpathRanges(anchors []Anchor) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		lastSplit := 0
		for k := range anchors {
			isMove := anchors[k].Command == MoveCommand
			isAfterClose := k > 0 && anchors[k-1].Command == CloseCommand
			if k > lastSplit && (isMove || isAfterClose) {
				if !yield(lastSplit, k) {
					return
				}
				lastSplit = k
			}
		}
		if lastSplit < len(anchors) {
			yield(lastSplit, len(anchors))
		}
	}
}

// Subpaths splits the path into its subpaths. Each subpath is an independent
// copy that also carries the path's position and style.
//
// A subpath starts at every move and right after every close, and runs up to
// the next such anchor. A trailing move, like a single anchor after a final
// close, therefore forms a subpath of its own instead of joining the previous
// one.
func (p *Path) Subpaths() []*Path {
	var subs []*Path
	for i, j := range subpathRanges(p.anchors) {
		subs = append(subs, p.slice(i, j))
	}
	return subs
}

// subpathSegments yields the segment between every pair of consecutive
// anchors of a single subpath. Close anchors resolve to the subpath's start.
func subpathSegments(anchors []Anchor, yield func(Line) bool) bool {
	start := startOf(anchors)
	for i := 0; i < len(anchors)-1; i++ {
		l := Line{
			P0: anchors[i].resolve(start),
			P1: anchors[i+1].resolve(start),
		}
		if !yield(l) {
			return false
		}
	}
	return true
}

// Segments returns an iterator over the straight segments the path is measured
// along: one per pair of consecutive anchors within a subpath, from one
// effective point to the next. Curves are represented by their chord, and a
// close anchor by a segment back to the start of its subpath.
func (p *Path) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i, j := range subpathRanges(p.anchors) {
			if !subpathSegments(p.anchors[i:j], yield) {
				return
			}
		}
	}
}

// Length returns the length of the path, the sum of the lengths of its
// [Path.Segments].
//
// Curves contribute the straight-line distance between their end points, not
// their arc length.
func (p *Path) Length() float64 {
	var sum float64
	for l := range p.Segments() {
		sum += l.Length()
	}
	return sum
}

// VectorAtLength returns the point at distance l along the path, measured the
// same way as [Path.Length], across all subpaths in order.
//
// Negative lengths return the start of the first segment. Lengths at or beyond
// the end of the path return the end of the last segment. Paths without
// segments return [Path.StartVector].
func (p *Path) VectorAtLength(l float64) Vector {
	l = max(l, 0)
	var acc float64
	var last Line
	found := false
	for seg := range p.Segments() {
		segLen := seg.Length()
		if acc+segLen > l {
			return seg.Eval((l - acc) / segLen)
		}
		acc += segLen
		last = seg
		found = true
	}
	if found {
		return last.P1
	}
	return p.StartVector()
}

// VectorAt returns the point at fraction t of the way along the path, with t
// in [0, 1].
//
// Every call measures the whole path. Callers sampling many points should use
// [Path.VectorAtLength] with a length computed once.
func (p *Path) VectorAt(t float64) Vector {
	return p.VectorAtLength(p.Length() * t)
}
