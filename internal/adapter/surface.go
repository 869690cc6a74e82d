// Package adapter provides the drawing surfaces fractal paths are
// revealed onto: an SVG writer, an animated GIF encoder and a bridge
// into the terminal UI.
package adapter

import (
	"fmt"
	"time"

	m "github.com/aberke/fractals/internal/model"
)

// Handle identifies a path registered on a Surface.
type Handle int

// Surface is a drawing target for staged path reveals. Implementations
// serialize their internal state, so extending different handles from
// different goroutines is safe; the caller must not run two extensions
// of the same handle at once.
type Surface interface {
	// Size reports the drawable area in path coordinates.
	Size() (w, h float64)

	// AddPath registers a path with its stroke style and returns a
	// handle. Only the first element (the leading MoveTo) is visible
	// until the handle is extended. The path is validated.
	AddPath(path m.Path, style m.Style) (Handle, error)

	// Extend grows the visible prefix of h to n elements, animating
	// the newly revealed span over d and blocking until the step
	// completes. n must exceed the current prefix and stay within the
	// path. d <= 0 reveals instantly.
	Extend(h Handle, n int, d time.Duration) error

	// Text places a label at a point.
	Text(at m.Point, s string) error

	// Rotate turns the registered path of h by angle radians about
	// center. It affects everything not yet rendered for h.
	Rotate(h Handle, angle float64, center m.Point) error

	// Clone registers a copy of h's path and style under a new handle,
	// visible prefix reset to the leading MoveTo.
	Clone(h Handle) (Handle, error)

	// Close finalizes the output. No calls may follow it.
	Close() error
}

// errUnknownHandle reports a handle the surface never issued.
func errUnknownHandle(h Handle) error {
	return fmt.Errorf("unknown path handle %d: %w", h, m.ErrInvalidParameter)
}

// errSurfaceClosed reports a call after Close.
func errSurfaceClosed() error {
	return fmt.Errorf("surface closed: %w", m.ErrInvalidParameter)
}

// checkExtend validates an Extend target against the current prefix
// and the path length.
func checkExtend(cur, n, total int) error {
	if n <= cur {
		return fmt.Errorf("extend to %d not past current prefix %d: %w", n, cur, m.ErrInvalidParameter)
	}

	if n > total {
		return fmt.Errorf("extend to %d beyond path length %d: %w", n, total, m.ErrInvalidParameter)
	}

	return nil
}
