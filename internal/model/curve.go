package model

// flattenSteps is the subdivision count used when a curve is
// approximated by a polyline for length and raster work.
const flattenSteps = 16

// Eval returns the point at parameter t in [0, 1] along the element,
// measured from the segment start (the pen position before it).
func (e Element) Eval(start Point, t float64) Point {
	switch e.Kind {
	case MoveToKind:
		return e.P0
	case LineToKind:
		return start.Lerp(e.P0, t)
	case QuadToKind:
		a := start.Lerp(e.P0, t)
		b := e.P0.Lerp(e.P1, t)

		return a.Lerp(b, t)
	case CubicToKind:
		a := start.Lerp(e.P0, t)
		b := e.P0.Lerp(e.P1, t)
		c := e.P1.Lerp(e.P2, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)

		return ab.Lerp(bc, t)
	}

	return start
}

// Flatten approximates the element by points along it, excluding the
// start point. Lines yield their endpoint; curves yield steps points.
// MoveTo yields its target so the caller can reposition the pen.
func (e Element) Flatten(start Point, steps int) []Point {
	switch e.Kind {
	case MoveToKind:
		return []Point{e.P0}
	case LineToKind:
		return []Point{e.P0}
	}

	if steps < 2 {
		steps = 2
	}

	out := make([]Point, 0, steps)
	for i := 1; i <= steps; i++ {
		out = append(out, e.Eval(start, float64(i)/float64(steps)))
	}

	return out
}

// Length returns the stroked length of the element from start.
// MoveTo contributes nothing; curves are measured flattened.
func (e Element) Length(start Point) float64 {
	switch e.Kind {
	case MoveToKind:
		return 0
	case LineToKind:
		return start.Distance(e.P0)
	}

	total := 0.0
	prev := start

	for _, pt := range e.Flatten(start, flattenSteps) {
		total += prev.Distance(pt)
		prev = pt
	}

	return total
}

// Truncate returns the element cut at parameter t, keeping the part
// from its start. Curves split with de Casteljau so the truncated
// piece traces the same arc. MoveTo is returned unchanged.
func (e Element) Truncate(start Point, t float64) Element {
	switch {
	case t <= 0:
		return LineTo(start)
	case t >= 1:
		return e
	}

	switch e.Kind {
	case MoveToKind:
		return e
	case LineToKind:
		return LineTo(start.Lerp(e.P0, t))
	case QuadToKind:
		a := start.Lerp(e.P0, t)
		end := e.Eval(start, t)

		return QuadTo(a, end)
	case CubicToKind:
		a := start.Lerp(e.P0, t)
		b := e.P0.Lerp(e.P1, t)
		ab := a.Lerp(b, t)
		end := e.Eval(start, t)

		return CubicTo(a, ab, end)
	}

	return e
}

// LengthTo returns the stroked length of the first n elements.
// n larger than the path is clamped.
func (p Path) LengthTo(n int) float64 {
	if n > len(p) {
		n = len(p)
	}

	total := 0.0
	pen := Point{}

	for _, e := range p[:n] {
		total += e.Length(pen)
		pen = e.End()
	}

	return total
}

// Length returns the stroked length of the whole path.
func (p Path) Length() float64 {
	return p.LengthTo(len(p))
}
