package model

import "fmt"

// Kind tags the segment type of an Element.
type Kind uint8

// Available Kind values.
const (
	// MoveToKind lifts the pen and places it at P0.
	MoveToKind Kind = iota
	// LineToKind draws a straight segment to P0.
	LineToKind
	// QuadToKind draws a quadratic bezier with control P0 ending at P1.
	QuadToKind
	// CubicToKind draws a cubic bezier with controls P0, P1 ending at P2.
	CubicToKind
)

func (k Kind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Element is one path segment. Which of P0, P1, P2 are meaningful
// depends on Kind; End reports the segment endpoint for any kind.
type Element struct {
	Kind Kind
	P0   Point
	P1   Point
	P2   Point
}

// MoveTo places the pen at p without drawing.
func MoveTo(p Point) Element {
	return Element{Kind: MoveToKind, P0: p}
}

// LineTo draws a straight segment from the pen position to p.
func LineTo(p Point) Element {
	return Element{Kind: LineToKind, P0: p}
}

// QuadTo draws a quadratic bezier through control ctrl to p.
func QuadTo(ctrl, p Point) Element {
	return Element{Kind: QuadToKind, P0: ctrl, P1: p}
}

// CubicTo draws a cubic bezier through controls c1, c2 to p.
func CubicTo(c1, c2, p Point) Element {
	return Element{Kind: CubicToKind, P0: c1, P1: c2, P2: p}
}

// End returns the segment endpoint, the pen position after the element.
func (e Element) End() Point {
	switch e.Kind {
	case QuadToKind:
		return e.P1
	case CubicToKind:
		return e.P2
	default:
		return e.P0
	}
}

// Path is an ordered sequence of segments. A non-empty path begins with
// exactly one MoveTo establishing the pen start position; later MoveTo
// elements are pen jumps between subpaths.
type Path []Element

// Start returns the pen start position. ok is false for an empty path
// or a path that does not begin with MoveTo.
func (p Path) Start() (Point, bool) {
	if len(p) == 0 || p[0].Kind != MoveToKind {
		return Point{}, false
	}

	return p[0].P0, true
}

// End returns the pen position after the last segment, or the zero
// point for an empty path.
func (p Path) End() Point {
	if len(p) == 0 {
		return Point{}
	}

	return p[len(p)-1].End()
}

// Validate checks the leading-MoveTo invariant.
func (p Path) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("empty path: %w", ErrInvalidParameter)
	}

	if p[0].Kind != MoveToKind {
		return fmt.Errorf("path starts with %s, not MoveTo: %w", p[0].Kind, ErrInvalidParameter)
	}

	for _, e := range p[1:] {
		if e.Kind > CubicToKind {
			return fmt.Errorf("unknown segment kind %d: %w", uint8(e.Kind), ErrInvalidParameter)
		}
	}

	return nil
}

// Segments counts the elements of the given kind.
func (p Path) Segments(kind Kind) int {
	n := 0

	for _, e := range p {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

// mapPoints applies f to the points an element actually uses.
func (e Element) mapPoints(f func(Point) Point) Element {
	switch e.Kind {
	case CubicToKind:
		e.P2 = f(e.P2)

		fallthrough
	case QuadToKind:
		e.P1 = f(e.P1)

		fallthrough
	default:
		e.P0 = f(e.P0)
	}

	return e
}

// Translate returns a copy of the path with every point shifted by d.
func (p Path) Translate(d Point) Path {
	out := make(Path, len(p))

	for i, e := range p {
		out[i] = e.mapPoints(func(pt Point) Point { return pt.Add(d) })
	}

	return out
}

// RotateAbout returns a copy of the path rotated by angle radians about center.
func (p Path) RotateAbout(angle float64, center Point) Path {
	out := make(Path, len(p))

	for i, e := range p {
		out[i] = e.mapPoints(func(pt Point) Point { return pt.RotateAbout(angle, center) })
	}

	return out
}
