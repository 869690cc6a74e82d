package domain

import (
	"fmt"

	m "github.com/aberke/fractals/internal/model"
)

// SierpinskiArrowhead generates the Sierpinski arrowhead curve as a
// single unbroken walk of 3^depth equal segments. The initial heading
// is 0 for even depths and -60° for odd ones, which keeps the curve's
// baseline horizontal; the end point always lands at distance side
// from start. Orientation -1 mirrors the curve across that baseline.
func SierpinskiArrowhead(start m.Point, side float64, opts m.Options) (m.Path, error) {
	opts = opts.Normalize()

	if err := validateSide(side); err != nil {
		return nil, fmt.Errorf("arrowhead: %w", err)
	}

	angle := 0.0
	if opts.Depth%2 == 1 {
		angle = -Angle60
	}

	path, _, _, err := arrowhead(m.Path{m.MoveTo(start)}, opts.Depth, start, side, angle, 1, opts.Orientation)
	if err != nil {
		return nil, fmt.Errorf("arrowhead: %w", err)
	}

	return path, nil
}

// arrowhead walks one production of the curve, threading the running
// pen position and heading through its three children. Children run at
// half the side length with turn signs (-s, s, -s), and the heading
// turns by s*60° between them.
func arrowhead(path m.Path, depth int, from m.Point, side, angle float64, turnSign, orientation int) (m.Path, m.Point, float64, error) {
	if depth <= 0 {
		next, err := NextPoint(from, side, normalizeAngle(float64(orientation)*angle))
		if err != nil {
			return nil, m.Point{}, 0, err
		}

		return AppendLine(path, next), next, angle, nil
	}

	turn := float64(turnSign) * Angle60

	var err error

	path, from, angle, err = arrowhead(path, depth-1, from, side/2, angle, -turnSign, orientation)
	if err != nil {
		return nil, m.Point{}, 0, err
	}

	angle += turn

	path, from, angle, err = arrowhead(path, depth-1, from, side/2, angle, turnSign, orientation)
	if err != nil {
		return nil, m.Point{}, 0, err
	}

	angle += turn

	path, from, angle, err = arrowhead(path, depth-1, from, side/2, angle, -turnSign, orientation)
	if err != nil {
		return nil, m.Point{}, 0, err
	}

	return path, from, angle, nil
}
