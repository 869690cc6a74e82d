package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/aberke/fractals/internal/adapter"
	m "github.com/aberke/fractals/internal/model"
)

// Generator produces the path of one fractal instance. Row drivers and
// the CLI wire the concrete curves through this signature.
type Generator func(center m.Point, side float64, depth, orientation int) (m.Path, error)

// RowSpec describes a row of fractal instances on one canvas.
type RowSpec struct {
	Width  float64
	Height float64
	Count  int

	// MinDepth seeds the leftmost instance; depth grows by one per
	// instance and is capped at MaxDepth. MaxDepth below MinDepth
	// means uncapped.
	MinDepth int
	MaxDepth int

	// Curve generates each instance. Base, when non-nil, generates the
	// reference outline drawn statically under the instance.
	Curve Generator
	Base  Generator
}

// Instance is one laid-out fractal of a row.
type Instance struct {
	Center      m.Point
	Side        float64
	Depth       int
	Orientation int
	Curve       m.Path
	Base        m.Path
}

// rowSideFraction is how much of an instance slot the fractal fills.
const rowSideFraction = 0.8

// Row lays out count instances left to right: instance i sits at
// ((i+0.5)*width/count, height/2) with side 0.8*width/count, the
// orientation alternating +1, -1, ... and the depth growing from
// MinDepth by one per instance up to MaxDepth.
func Row(spec RowSpec) ([]Instance, error) {
	if spec.Count < 1 {
		return nil, fmt.Errorf("row: count %d: %w", spec.Count, m.ErrInvalidParameter)
	}

	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("row: canvas %gx%g: %w", spec.Width, spec.Height, m.ErrInvalidParameter)
	}

	if spec.Curve == nil {
		return nil, fmt.Errorf("row: nil curve generator: %w", m.ErrInvalidParameter)
	}

	if spec.MinDepth < 0 {
		spec.MinDepth = 0
	}

	if spec.MaxDepth < spec.MinDepth {
		spec.MaxDepth = spec.MinDepth + spec.Count - 1
	}

	slot := spec.Width / float64(spec.Count)
	side := rowSideFraction * slot
	out := make([]Instance, 0, spec.Count)

	for i := 0; i < spec.Count; i++ {
		inst := Instance{
			Center:      m.Pt((float64(i)+0.5)*slot, spec.Height/2),
			Side:        side,
			Depth:       min(spec.MinDepth+i, spec.MaxDepth),
			Orientation: 1,
		}
		if i%2 == 1 {
			inst.Orientation = -1
		}

		curve, err := spec.Curve(inst.Center, side, inst.Depth, inst.Orientation)
		if err != nil {
			return nil, fmt.Errorf("row: instance %d: %w", i, err)
		}

		inst.Curve = curve

		if spec.Base != nil {
			base, err := spec.Base(inst.Center, side, inst.Depth, inst.Orientation)
			if err != nil {
				return nil, fmt.Errorf("row: instance %d base: %w", i, err)
			}

			inst.Base = base
		}

		out = append(out, inst)
	}

	return out, nil
}

// RenderRow draws a laid-out row: every base outline and depth label
// first, statically, then each curve revealed in sequence. Where a
// base outline is congruent to its left neighbor's, it is produced by
// cloning the neighbor's handle and rotating the clone by π about the
// midpoint between the two centers, which is exactly the mirrored
// outline the alternating orientation asks for.
func RenderRow(surface adapter.Surface, instances []Instance, style m.Style, interval time.Duration) error {
	var prev adapter.Handle

	hasPrev := false

	for i := range instances {
		inst := &instances[i]

		if len(inst.Base) == 0 {
			hasPrev = false
			continue
		}

		h, err := rowBaseHandle(surface, instances, i, prev, hasPrev)
		if err != nil {
			return fmt.Errorf("row: instance %d base: %w", i, err)
		}

		if err := surface.Extend(h, len(inst.Base), 0); err != nil {
			return fmt.Errorf("row: instance %d base: %w", i, err)
		}

		prev, hasPrev = h, true

		label := m.Pt(inst.Center.X, inst.Center.Y+inst.Side*0.62)
		if err := surface.Text(label, fmt.Sprintf("depth %d", inst.Depth)); err != nil {
			return fmt.Errorf("row: instance %d label: %w", i, err)
		}
	}

	for i := range instances {
		if err := Reveal(surface, instances[i].Curve, style, interval); err != nil {
			return fmt.Errorf("row: instance %d: %w", i, err)
		}
	}

	return nil
}

// rowBaseHandle submits the base outline of instance i, cloning and
// rotating the previous handle when the outlines are congruent.
func rowBaseHandle(surface adapter.Surface, instances []Instance, i int, prev adapter.Handle, hasPrev bool) (adapter.Handle, error) {
	inst := &instances[i]

	if hasPrev && congruentBases(&instances[i-1], inst) {
		h, err := surface.Clone(prev)
		if err != nil {
			return 0, err
		}

		mid := instances[i-1].Center.Midpoint(inst.Center)
		if err := surface.Rotate(h, math.Pi, mid); err != nil {
			return 0, err
		}

		return h, nil
	}

	return surface.AddPath(inst.Base, baseStyle())
}

// baseStyle is the muted stroke reference outlines render with.
func baseStyle() m.Style {
	return m.Style{Stroke: "gray", Width: 1}
}

// congruentBases reports whether two neighboring outlines are the same
// shape, differing only by placement and mirrored orientation.
func congruentBases(a, b *Instance) bool {
	return a.Side == b.Side && len(a.Base) == len(b.Base) && a.Orientation != b.Orientation
}
