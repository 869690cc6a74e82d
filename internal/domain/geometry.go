// Package domain implements the fractal generators and the staged
// reveal workflows that replay their paths onto a drawing surface.
package domain

import (
	"fmt"
	"math"

	m "github.com/aberke/fractals/internal/model"
)

// Angle constants in radians. The canvas frame has Y growing down, so
// positive angles turn clockwise on screen.
const (
	Angle45    = math.Pi / 4
	Angle60    = math.Pi / 3
	Angle120   = 2 * math.Pi / 3
	Angle240   = 4 * math.Pi / 3
	AngleRight = math.Pi / 2
	AngleFull  = 2 * math.Pi
)

// NextPoint projects distance from a point along a heading. Headings
// outside the open interval (-2π, 2π) are rejected with ErrInvalidAngle;
// the caller must not use the returned point in that case.
func NextPoint(from m.Point, distance, angle float64) (m.Point, error) {
	if angle <= -AngleFull || angle >= AngleFull {
		return m.Point{}, fmt.Errorf("heading %g rad: %w", angle, m.ErrInvalidAngle)
	}

	sin, cos := math.Sincos(angle)

	return m.Point{X: from.X + distance*cos, Y: from.Y + distance*sin}, nil
}

// RotatePoint rotates p by angle radians about center.
func RotatePoint(p m.Point, angle float64, center m.Point) m.Point {
	return p.RotateAbout(angle, center)
}

// TriangleHeight returns the side opposite angle in a right triangle
// with the given hypotenuse.
func TriangleHeight(angle, hypotenuse float64) float64 {
	return hypotenuse * math.Sin(angle)
}

// AppendLine appends a straight segment to the path and returns it.
func AppendLine(path m.Path, to m.Point) m.Path {
	return append(path, m.LineTo(to))
}

// normalizeAngle folds an accumulated heading into NextPoint's domain.
// The sign of the input is kept, so the direction is unchanged.
func normalizeAngle(angle float64) float64 {
	return math.Mod(angle, AngleFull)
}

// coerceOrientation maps anything that is not -1 to +1.
func coerceOrientation(orientation int) int {
	if orientation != 1 && orientation != -1 {
		return 1
	}

	return orientation
}

// validateSide rejects non-positive side lengths.
func validateSide(side float64) error {
	if side <= 0 {
		return fmt.Errorf("side length %g: %w", side, m.ErrInvalidParameter)
	}

	return nil
}
