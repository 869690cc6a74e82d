package domain

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aberke/fractals/internal/adapter"
	"github.com/aberke/fractals/internal/logging"
	m "github.com/aberke/fractals/internal/model"
)

// DefaultInterval paces reveal steps when the caller passes none.
const DefaultInterval = 30 * time.Millisecond

// Reveal replays path onto the surface as a staged animation: the path
// is submitted with only its leading MoveTo visible, then extended one
// segment per step, each step blocking for interval. It returns the
// first surface error, wrapped.
func Reveal(surface adapter.Surface, path m.Path, style m.Style, interval time.Duration) error {
	if err := path.Validate(); err != nil {
		return fmt.Errorf("reveal: %w", err)
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	logging.Logger().Debug("reveal", "segments", len(path), "interval", interval)

	h, err := surface.AddPath(path, style)
	if err != nil {
		return fmt.Errorf("reveal: submit path: %w", err)
	}

	for n := 2; n <= len(path); n++ {
		if err := surface.Extend(h, n, interval); err != nil {
			return fmt.Errorf("reveal: extend to %d of %d: %w", n, len(path), err)
		}
	}

	return nil
}

// RevealBranched replays a path that encodes a binary tree in pre-order
// as consecutive fixed-size groups. Group 0 animates first as its own
// surface path; the remaining group range then splits at its midpoint
// into the two subtrees, which reveal concurrently, one goroutine per
// branch. Within a branch the order is strict, and every group is its
// own surface path, so no two extensions of one handle are ever in
// flight.
//
// onLevelEnter, when non-nil, fires once per group just before its
// first segment animates, with the 1-based tree level. Branches call
// it concurrently; the callback must be safe for that.
func RevealBranched(surface adapter.Surface, path m.Path, style m.Style, interval time.Duration, groupSize int, onLevelEnter func(level int)) error {
	if groupSize < 2 {
		return fmt.Errorf("reveal branched: group size %d: %w", groupSize, m.ErrInvalidParameter)
	}

	if len(path) == 0 || len(path)%groupSize != 0 {
		return fmt.Errorf("reveal branched: path length %d is not a multiple of group size %d: %w",
			len(path), groupSize, m.ErrInvalidParameter)
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	r := &branchedReveal{
		surface:  surface,
		path:     path,
		style:    style,
		interval: interval,
		size:     groupSize,
		onLevel:  onLevelEnter,
	}

	logging.Logger().Debug("reveal branched", "groups", len(path)/groupSize, "group_size", groupSize)

	return r.reveal(0, len(path)/groupSize, 1)
}

type branchedReveal struct {
	surface  adapter.Surface
	path     m.Path
	style    m.Style
	interval time.Duration
	size     int
	onLevel  func(level int)
}

// reveal animates the half-open group range [lo, hi): the first group
// sequentially, then the two halves of the rest concurrently.
func (r *branchedReveal) reveal(lo, hi, level int) error {
	if lo >= hi {
		return nil
	}

	if err := r.revealGroup(lo, level); err != nil {
		return err
	}

	rest := hi - (lo + 1)
	if rest == 0 {
		return nil
	}

	mid := lo + 1 + rest/2

	var g errgroup.Group

	g.Go(func() error { return r.reveal(lo+1, mid, level+1) })
	g.Go(func() error { return r.reveal(mid, hi, level+1) })

	return g.Wait()
}

func (r *branchedReveal) revealGroup(i, level int) error {
	if r.onLevel != nil {
		r.onLevel(level)
	}

	group := r.path[i*r.size : (i+1)*r.size]

	h, err := r.surface.AddPath(group, r.style)
	if err != nil {
		return fmt.Errorf("reveal branched: group %d: %w", i, err)
	}

	for n := 2; n <= len(group); n++ {
		if err := r.surface.Extend(h, n, r.interval); err != nil {
			return fmt.Errorf("reveal branched: group %d: extend to %d: %w", i, n, err)
		}
	}

	return nil
}
