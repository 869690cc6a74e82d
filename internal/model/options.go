package model

import "fmt"

// LevelChange is the per-child depth decrement for the Sierpinski
// triangle recursion. All components default to 1; larger values make
// a subtree terminate earlier.
type LevelChange struct {
	Left     int
	Right    int
	Vertical int
}

// DefaultLevelChange decrements every child by one level.
func DefaultLevelChange() LevelChange {
	return LevelChange{Left: 1, Right: 1, Vertical: 1}
}

// IsDefault reports whether every component is exactly 1.
func (lc LevelChange) IsDefault() bool {
	return lc == DefaultLevelChange()
}

// Validate rejects components below 1, which would never terminate.
func (lc LevelChange) Validate() error {
	if lc.Left < 1 || lc.Right < 1 || lc.Vertical < 1 {
		return fmt.Errorf("level change %+v has a component below 1: %w", lc, ErrInvalidParameter)
	}

	return nil
}

// Options bundles the shared generator parameters.
type Options struct {
	// Depth is the recursion depth. Negative values clamp to 0.
	Depth int
	// Orientation is +1 or -1; any other value coerces to +1.
	Orientation int
	// Edge selects the Pythagoras tree edge shape.
	Edge EdgeKind
	// Tension parametrizes the spline edge shapes.
	Tension float64
	// LevelChange tunes the triangle recursion. Zero value means default.
	LevelChange LevelChange
	// Seed feeds the randomized edge shape. Zero picks a fixed default.
	Seed int64
}

// DefaultOptions returns depth 3, orientation +1, straight edges.
func DefaultOptions() Options {
	return Options{
		Depth:       3,
		Orientation: 1,
		Edge:        EdgeStraight,
		Tension:     0.5,
		LevelChange: DefaultLevelChange(),
	}
}

// Normalize returns a copy with orientation coerced to +1 when it is
// not exactly +1 or -1, negative depth clamped to 0, and a zero-value
// level change replaced by the default.
func (o Options) Normalize() Options {
	if o.Orientation != 1 && o.Orientation != -1 {
		o.Orientation = 1
	}

	if o.Depth < 0 {
		o.Depth = 0
	}

	if (o.LevelChange == LevelChange{}) {
		o.LevelChange = DefaultLevelChange()
	}

	return o
}
