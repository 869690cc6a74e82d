package domain

import (
	"fmt"

	m "github.com/aberke/fractals/internal/model"
)

// EquilateralTrianglePath walks the three sides of an equilateral
// triangle from its start corner: MoveTo(start), then one LineTo per
// side at headings 0, orientation*120° and orientation*240°. The third
// segment lands back on start.
func EquilateralTrianglePath(start m.Point, side float64, orientation int) (m.Path, error) {
	if err := validateSide(side); err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}

	o := float64(coerceOrientation(orientation))
	path := m.Path{m.MoveTo(start)}
	pen := start

	for i := 0; i < 3; i++ {
		next, err := NextPoint(pen, side, o*float64(i)*Angle120)
		if err != nil {
			return nil, fmt.Errorf("triangle: %w", err)
		}

		path = AppendLine(path, next)
		pen = next
	}

	return path, nil
}

// TriangleOutline is EquilateralTrianglePath positioned by centroid
// instead of start corner. Rows draw it as the reference outline under
// triangle and arrowhead instances.
func TriangleOutline(center m.Point, side float64, orientation int) (m.Path, error) {
	o := coerceOrientation(orientation)

	return EquilateralTrianglePath(triangleStart(center, side, o), side, o)
}

// triangleStart returns the corner an equilateral triangle is drawn
// from, for a triangle with the given centroid and orientation.
func triangleStart(center m.Point, side float64, orientation int) m.Point {
	h := TriangleHeight(Angle60, side)

	return m.Pt(center.X-side/2, center.Y-float64(orientation)*h/3)
}

// triangleChildren returns the centers of the left, right and vertical
// children of the interior triangle at center. The vertical child sits
// above or below depending on orientation.
func triangleChildren(center m.Point, side float64, orientation int) (left, right, vertical m.Point) {
	h := TriangleHeight(Angle60, side)
	o := float64(orientation)

	left = center.Add(m.Pt(-side/2, o*h/3))
	right = center.Add(m.Pt(side/2, o*h/3))
	vertical = center.Add(m.Pt(0, -o*2*h/3))

	return left, right, vertical
}

// SierpinskiTriangle generates the Sierpinski triangle by recursive
// subdivision: one outer boundary triangle at full side length with the
// orientation flipped, then the interior triangles at half side length
// starting from the point shifted by orientation*height(side/2)/4 along
// Y from center. Depth counts interior generations; depth 0 leaves the
// interior empty.
func SierpinskiTriangle(center m.Point, side float64, opts m.Options) (m.Path, error) {
	path, interiorCenter, opts, err := sierpinskiBoundary(center, side, opts)
	if err != nil {
		return nil, err
	}

	return appendTriangles(path, interiorCenter, side/2, opts.Depth, opts.Orientation, opts.LevelChange)
}

// sierpinskiBoundary emits the outer triangle and locates the interior.
func sierpinskiBoundary(center m.Point, side float64, opts m.Options) (m.Path, m.Point, m.Options, error) {
	opts = opts.Normalize()

	if err := validateSide(side); err != nil {
		return nil, m.Point{}, opts, fmt.Errorf("sierpinski: %w", err)
	}

	if err := opts.LevelChange.Validate(); err != nil {
		return nil, m.Point{}, opts, fmt.Errorf("sierpinski: %w", err)
	}

	boundary, err := EquilateralTrianglePath(triangleStart(center, side, -opts.Orientation), side, -opts.Orientation)
	if err != nil {
		return nil, m.Point{}, opts, fmt.Errorf("sierpinski: %w", err)
	}

	shift := float64(opts.Orientation) * TriangleHeight(Angle60, side/2) / 4
	interiorCenter := center.Add(m.Pt(0, shift))

	return boundary, interiorCenter, opts, nil
}

// appendTriangles is the recursive interior strategy.
func appendTriangles(path m.Path, center m.Point, side float64, depth, orientation int, lc m.LevelChange) (m.Path, error) {
	if depth <= 0 {
		return path, nil
	}

	tri, err := EquilateralTrianglePath(triangleStart(center, side, orientation), side, orientation)
	if err != nil {
		return nil, err
	}

	path = append(path, tri...)

	left, right, vertical := triangleChildren(center, side, orientation)

	path, err = appendTriangles(path, left, side/2, depth-lc.Left, orientation, lc)
	if err != nil {
		return nil, err
	}

	path, err = appendTriangles(path, right, side/2, depth-lc.Right, orientation, lc)
	if err != nil {
		return nil, err
	}

	return appendTriangles(path, vertical, side/2, depth-lc.Vertical, orientation, lc)
}

// triangleDef is one queued interior triangle.
type triangleDef struct {
	center m.Point
	side   float64
}

// SierpinskiTriangleIterative generates the same geometry as
// SierpinskiTriangle with a FIFO queue instead of recursion: pop the
// earliest triangle, emit its three segments, push its three children,
// until the queue holds 3^depth entries. Segments come out in pop
// order, so the two strategies agree on counts and on the multiset of
// endpoints but not on ordering. Only the default level change is
// supported here.
func SierpinskiTriangleIterative(center m.Point, side float64, opts m.Options) (m.Path, error) {
	opts = opts.Normalize()

	if !opts.LevelChange.IsDefault() {
		return nil, fmt.Errorf("sierpinski queue strategy supports only the default level change: %w", m.ErrInvalidParameter)
	}

	path, interiorCenter, opts, err := sierpinskiBoundary(center, side, opts)
	if err != nil {
		return nil, err
	}

	queue := []triangleDef{{center: interiorCenter, side: side / 2}}
	limit := pow(3, opts.Depth)

	for len(queue) < limit {
		def := queue[0]
		queue = queue[1:]

		tri, err := EquilateralTrianglePath(triangleStart(def.center, def.side, opts.Orientation), def.side, opts.Orientation)
		if err != nil {
			return nil, err
		}

		path = append(path, tri...)

		left, right, vertical := triangleChildren(def.center, def.side, opts.Orientation)
		queue = append(queue,
			triangleDef{center: left, side: def.side / 2},
			triangleDef{center: right, side: def.side / 2},
			triangleDef{center: vertical, side: def.side / 2},
		)
	}

	return path, nil
}

// pow is integer exponentiation for small counts.
func pow(base, exp int) int {
	out := 1

	for i := 0; i < exp; i++ {
		out *= base
	}

	return out
}
