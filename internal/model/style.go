package model

import "fmt"

// Style carries the stroke styling a surface applies to a path.
type Style struct {
	Stroke string
	Width  float64
}

// DefaultStyle returns a black 1-unit stroke.
func DefaultStyle() Style {
	return Style{Stroke: "black", Width: 1}
}

// EdgeKind selects the shape function used for Pythagoras tree edges.
type EdgeKind uint8

// Available EdgeKind values.
const (
	// EdgeStraight draws plain line segments.
	EdgeStraight EdgeKind = iota
	// EdgeQuad bulges each edge with a quadratic bezier.
	EdgeQuad
	// EdgeArc bows each edge along a circular arc.
	EdgeArc
	// EdgeCatmullRom rounds each edge with a fixed-tension spline segment.
	EdgeCatmullRom
	// EdgeCatmullRomRandom draws a tension per edge from [0, 1).
	EdgeCatmullRomRandom
)

var edgeKindNames = map[EdgeKind]string{
	EdgeStraight:         "straight",
	EdgeQuad:             "quad",
	EdgeArc:              "arc",
	EdgeCatmullRom:       "catmull",
	EdgeCatmullRomRandom: "catmull-random",
}

func (k EdgeKind) String() string {
	if name, ok := edgeKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("EdgeKind(%d)", uint8(k))
}

// ParseEdgeKind maps a CLI name back to its EdgeKind.
func ParseEdgeKind(name string) (EdgeKind, error) {
	for kind, n := range edgeKindNames {
		if n == name {
			return kind, nil
		}
	}

	return EdgeStraight, fmt.Errorf("unknown edge kind %q: %w", name, ErrInvalidParameter)
}

// EdgeKinds lists the known kinds in declaration order.
func EdgeKinds() []EdgeKind {
	return []EdgeKind{EdgeStraight, EdgeQuad, EdgeArc, EdgeCatmullRom, EdgeCatmullRomRandom}
}
