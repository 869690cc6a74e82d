package domain

import (
	"errors"
	"math"
	"testing"

	m "github.com/aberke/fractals/internal/model"
)

// interiorTriangles is the closed-form interior count for depth d with
// the default level change: 3^0 + 3^1 + ... + 3^(d-1).
func interiorTriangles(d int) int {
	return (pow(3, d) - 1) / 2
}

func TestEquilateralTrianglePath(t *testing.T) {
	path, err := EquilateralTrianglePath(m.Pt(0, 0), 10, 1)
	if err != nil {
		t.Fatalf("EquilateralTrianglePath() error: %v", err)
	}

	if len(path) != 4 {
		t.Fatalf("path has %d elements, want 1 MoveTo + 3 LineTo", len(path))
	}

	diff(t, 1, path.Segments(m.MoveToKind))
	diff(t, 3, path.Segments(m.LineToKind))

	h := 10 * math.Sin(Angle60)
	diffApprox(t, m.Pt(0, 0), path[0].P0)
	diffApprox(t, m.Pt(10, 0), path[1].P0)
	diffApprox(t, m.Pt(5, h), path[2].P0)
	diffApprox(t, m.Pt(0, 0), path[3].P0) // closes on start
}

func TestEquilateralTrianglePathOrientation(t *testing.T) {
	up, err := EquilateralTrianglePath(m.Pt(0, 0), 10, -1)
	if err != nil {
		t.Fatalf("EquilateralTrianglePath() error: %v", err)
	}

	h := 10 * math.Sin(Angle60)
	diffApprox(t, m.Pt(5, -h), up[2].P0)

	// Anything other than ±1 coerces to +1.
	coerced, err := EquilateralTrianglePath(m.Pt(0, 0), 10, 7)
	if err != nil {
		t.Fatalf("EquilateralTrianglePath() error: %v", err)
	}

	diffApprox(t, m.Pt(5, h), coerced[2].P0)
}

func TestEquilateralTrianglePathRejectsBadSide(t *testing.T) {
	for _, side := range []float64{0, -3} {
		_, err := EquilateralTrianglePath(m.Pt(0, 0), side, 1)
		if !errors.Is(err, m.ErrInvalidParameter) {
			t.Errorf("EquilateralTrianglePath(side=%g) error = %v, want ErrInvalidParameter", side, err)
		}
	}
}

func TestSierpinskiTriangleCounts(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		opts := m.DefaultOptions()
		opts.Depth = depth

		path, err := SierpinskiTriangle(m.Pt(0, 0), 64, opts)
		if err != nil {
			t.Fatalf("SierpinskiTriangle(depth=%d) error: %v", depth, err)
		}

		wantTriangles := interiorTriangles(depth) + 1 // interior plus boundary

		if got := path.Segments(m.LineToKind); got != 3*wantTriangles {
			t.Errorf("depth %d: %d LineTo segments, want %d", depth, got, 3*wantTriangles)
		}

		if got := path.Segments(m.MoveToKind); got != wantTriangles {
			t.Errorf("depth %d: %d MoveTo segments, want %d", depth, got, wantTriangles)
		}

		if err := path.Validate(); err != nil {
			t.Errorf("depth %d: %v", depth, err)
		}
	}
}

func TestSierpinskiTriangleDepthZeroIsBoundaryOnly(t *testing.T) {
	opts := m.DefaultOptions()
	opts.Depth = 0

	path, err := SierpinskiTriangle(m.Pt(0, 0), 64, opts)
	if err != nil {
		t.Fatalf("SierpinskiTriangle() error: %v", err)
	}

	if len(path) != 4 {
		t.Fatalf("depth 0 path has %d elements, want the boundary's 4", len(path))
	}

	// Negative depth behaves like depth 0.
	opts.Depth = -2

	neg, err := SierpinskiTriangle(m.Pt(0, 0), 64, opts)
	if err != nil {
		t.Fatalf("SierpinskiTriangle() error: %v", err)
	}

	diff(t, endpointMultiset(path), endpointMultiset(neg))
}

func TestSierpinskiTriangleBoundaryIsFlipped(t *testing.T) {
	opts := m.DefaultOptions()
	opts.Depth = 1

	path, err := SierpinskiTriangle(m.Pt(0, 0), 12, opts)
	if err != nil {
		t.Fatalf("SierpinskiTriangle() error: %v", err)
	}

	// Boundary walks with orientation -1: its second corner sits above
	// the first (negative Y step), while the interior triangle at
	// orientation +1 steps down.
	boundaryRise := path[2].P0.Y - path[1].P0.Y
	if boundaryRise >= 0 {
		t.Errorf("boundary second edge rises by %g, want negative (flipped orientation)", boundaryRise)
	}

	interiorRise := path[6].P0.Y - path[5].P0.Y
	if interiorRise <= 0 {
		t.Errorf("interior second edge rises by %g, want positive", interiorRise)
	}
}

func TestSierpinskiStrategiesAgree(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		opts := m.DefaultOptions()
		opts.Depth = depth

		recursive, err := SierpinskiTriangle(m.Pt(7, -3), 64, opts)
		if err != nil {
			t.Fatalf("SierpinskiTriangle(depth=%d) error: %v", depth, err)
		}

		iterative, err := SierpinskiTriangleIterative(m.Pt(7, -3), 64, opts)
		if err != nil {
			t.Fatalf("SierpinskiTriangleIterative(depth=%d) error: %v", depth, err)
		}

		if len(recursive) != len(iterative) {
			t.Errorf("depth %d: recursive %d elements, iterative %d", depth, len(recursive), len(iterative))
		}

		diff(t, endpointMultiset(recursive), endpointMultiset(iterative))
	}
}

func TestSierpinskiStrategiesDifferInOrder(t *testing.T) {
	opts := m.DefaultOptions()
	opts.Depth = 3

	recursive, err := SierpinskiTriangle(m.Pt(0, 0), 64, opts)
	if err != nil {
		t.Fatal(err)
	}

	iterative, err := SierpinskiTriangleIterative(m.Pt(0, 0), 64, opts)
	if err != nil {
		t.Fatal(err)
	}

	same := true

	for i := range recursive {
		if recursive[i] != iterative[i] {
			same = false
			break
		}
	}

	if same {
		t.Error("depth-first and breadth-first emission agree element by element, want different ordering")
	}
}

func TestSierpinskiLevelChange(t *testing.T) {
	opts := m.DefaultOptions()
	opts.Depth = 3
	opts.LevelChange = m.LevelChange{Left: 3, Right: 3, Vertical: 1}

	path, err := SierpinskiTriangle(m.Pt(0, 0), 64, opts)
	if err != nil {
		t.Fatalf("SierpinskiTriangle() error: %v", err)
	}

	// Only the vertical branch survives each level: the parent plus a
	// vertical chain of depth-1 descendants, plus the boundary.
	wantTriangles := opts.Depth + 1

	if got := path.Segments(m.MoveToKind); got != wantTriangles {
		t.Errorf("MoveTo count = %d, want %d", got, wantTriangles)
	}

	// The queue strategy refuses non-default level changes.
	if _, err := SierpinskiTriangleIterative(m.Pt(0, 0), 64, opts); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("SierpinskiTriangleIterative() error = %v, want ErrInvalidParameter", err)
	}

	// Components below 1 are rejected outright.
	opts.LevelChange = m.LevelChange{Left: 0, Right: 1, Vertical: 1}
	if _, err := SierpinskiTriangle(m.Pt(0, 0), 64, opts); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("SierpinskiTriangle() error = %v, want ErrInvalidParameter", err)
	}
}

func TestSierpinskiTriangleRejectsBadSide(t *testing.T) {
	if _, err := SierpinskiTriangle(m.Pt(0, 0), 0, m.DefaultOptions()); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("SierpinskiTriangle(side=0) error = %v, want ErrInvalidParameter", err)
	}

	if _, err := SierpinskiTriangleIterative(m.Pt(0, 0), -1, m.DefaultOptions()); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("SierpinskiTriangleIterative(side=-1) error = %v, want ErrInvalidParameter", err)
	}
}
