package domain

import (
	"fmt"
	"math"
	"math/rand"

	m "github.com/aberke/fractals/internal/model"
)

// EdgeFunc shapes one square edge of the Pythagoras tree. It receives
// the corner the edge is computed from and the corner it must end on,
// and returns exactly one segment ending on to.
type EdgeFunc func(from, to m.Point) m.Element

// circleK is the bezier handle factor approximating a 90° circular arc.
const circleK = 0.5523

// StraightEdge draws plain line segments.
func StraightEdge() EdgeFunc {
	return func(_, to m.Point) m.Element {
		return m.LineTo(to)
	}
}

// QuadEdge bulges each edge with a quadratic bezier whose control point
// sits over the chord midpoint, offset perpendicular by a quarter of
// the chord length.
func QuadEdge() EdgeFunc {
	return func(from, to m.Point) m.Element {
		ctrl := from.Midpoint(to).Add(perp(from, to).Mul(0.25))

		return m.QuadTo(ctrl, to)
	}
}

// ArcEdge bows each edge along a 90° circular arc, approximated by one
// cubic with handles k*r long at 45° off the chord.
func ArcEdge() EdgeFunc {
	return func(from, to m.Point) m.Element {
		dist := from.Distance(to)
		if dist == 0 {
			return m.LineTo(to)
		}

		handle := circleK * dist / math.Sqrt2
		dir := to.Sub(from).Mul(1 / dist)
		c1 := from.Add(dir.Rotate(Angle45).Mul(handle))
		c2 := to.Add(dir.Mul(-1).Rotate(-Angle45).Mul(handle))

		return m.CubicTo(c1, c2, to)
	}
}

// CatmullRomEdge rounds each edge with a spline-like cubic: handles a
// third of the chord long, swung off the chord by (1-tension)*π/8.
// Tension 1 degenerates to a straight chord, 0 is the loosest bow.
func CatmullRomEdge(tension float64) EdgeFunc {
	return func(from, to m.Point) m.Element {
		return catmullRomEdge(from, to, tension)
	}
}

// RandomCatmullRomEdge draws a fresh tension from [0, 1) per edge.
func RandomCatmullRomEdge(rng *rand.Rand) EdgeFunc {
	return func(from, to m.Point) m.Element {
		return catmullRomEdge(from, to, rng.Float64())
	}
}

func catmullRomEdge(from, to m.Point, tension float64) m.Element {
	tension = math.Max(0, math.Min(1, tension))
	swing := (1 - tension) * math.Pi / 8
	third := to.Sub(from).Mul(1.0 / 3)

	c1 := from.Add(third.Rotate(swing))
	c2 := to.Sub(third.Rotate(-swing))

	return m.CubicTo(c1, c2, to)
}

// perp returns the chord from->to rotated a quarter turn.
func perp(from, to m.Point) m.Point {
	d := to.Sub(from)

	return m.Pt(-d.Y, d.X)
}

// EdgeForKind maps an options edge kind to its EdgeFunc. The seed only
// matters for the randomized kind; seed 0 picks a fixed default so
// repeated runs stay reproducible.
func EdgeForKind(kind m.EdgeKind, tension float64, seed int64) (EdgeFunc, error) {
	switch kind {
	case m.EdgeStraight:
		return StraightEdge(), nil
	case m.EdgeQuad:
		return QuadEdge(), nil
	case m.EdgeArc:
		return ArcEdge(), nil
	case m.EdgeCatmullRom:
		return CatmullRomEdge(tension), nil
	case m.EdgeCatmullRomRandom:
		if seed == 0 {
			seed = 1
		}

		return RandomCatmullRomEdge(rand.New(rand.NewSource(seed))), nil
	}

	return nil, fmt.Errorf("edge kind %v: %w", kind, m.ErrInvalidParameter)
}
