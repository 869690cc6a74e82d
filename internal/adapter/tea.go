package adapter

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/aberke/fractals/internal/model"
)

// PathMsg announces a path's full geometry. A repeated handle replaces
// the geometry already held for it, which is how rotations reach the
// terminal.
type PathMsg struct {
	Handle Handle
	Path   m.Path
	Style  m.Style
}

// ExtendMsg moves the visible prefix of a handle.
type ExtendMsg struct {
	Handle Handle
	N      int
}

// TextMsg places a label.
type TextMsg struct {
	At   m.Point
	Text string
}

// RevealDoneMsg reports the end of the whole reveal run.
type RevealDoneMsg struct {
	Err error
}

// TeaSurface forwards surface calls as messages to a Bubble Tea
// program and paces Extend by sleeping its duration, so the animation
// plays in real time on the terminal.
type TeaSurface struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	w, h    float64
	paths   map[Handle]m.Path
	styles  map[Handle]m.Style
	visible map[Handle]int
	next    Handle
	closed  bool
}

// NewTea creates a surface bridging into a program via send, typically
// Program.Send.
func NewTea(send func(tea.Msg), w, h float64) *TeaSurface {
	return &TeaSurface{
		send:    send,
		w:       w,
		h:       h,
		paths:   map[Handle]m.Path{},
		styles:  map[Handle]m.Style{},
		visible: map[Handle]int{},
	}
}

// Size reports the drawable area in path coordinates, not terminal
// cells; the program scales to fit.
func (s *TeaSurface) Size() (float64, float64) { return s.w, s.h }

// AddPath registers a path and announces it.
func (s *TeaSurface) AddPath(path m.Path, style m.Style) (Handle, error) {
	if err := path.Validate(); err != nil {
		return 0, fmt.Errorf("tea: %w", err)
	}

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return 0, errSurfaceClosed()
	}

	h := s.next
	s.next++
	s.paths[h] = append(m.Path(nil), path...)
	s.styles[h] = style
	s.visible[h] = 1

	s.mu.Unlock()
	s.send(PathMsg{Handle: h, Path: s.paths[h], Style: style})

	return h, nil
}

// Extend announces the new prefix, then sleeps for d.
func (s *TeaSurface) Extend(h Handle, n int, d time.Duration) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return errSurfaceClosed()
	}

	path, ok := s.paths[h]
	if !ok {
		s.mu.Unlock()
		return errUnknownHandle(h)
	}

	if err := checkExtend(s.visible[h], n, len(path)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("tea: %w", err)
	}

	s.visible[h] = n
	s.mu.Unlock()

	s.send(ExtendMsg{Handle: h, N: n})

	if d > 0 {
		time.Sleep(d)
	}

	return nil
}

// Text announces a label.
func (s *TeaSurface) Text(at m.Point, text string) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return errSurfaceClosed()
	}

	s.mu.Unlock()
	s.send(TextMsg{At: at, Text: text})

	return nil
}

// Rotate turns the registered path and announces the new geometry.
func (s *TeaSurface) Rotate(h Handle, angle float64, center m.Point) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return errSurfaceClosed()
	}

	path, ok := s.paths[h]
	if !ok {
		s.mu.Unlock()
		return errUnknownHandle(h)
	}

	rotated := path.RotateAbout(angle, center)
	s.paths[h] = rotated
	style := s.styles[h]

	s.mu.Unlock()
	s.send(PathMsg{Handle: h, Path: rotated, Style: style})

	return nil
}

// Clone registers a copy of h's path and announces it.
func (s *TeaSurface) Clone(h Handle) (Handle, error) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return 0, errSurfaceClosed()
	}

	path, ok := s.paths[h]
	if !ok {
		s.mu.Unlock()
		return 0, errUnknownHandle(h)
	}

	nh := s.next
	s.next++
	s.paths[nh] = append(m.Path(nil), path...)
	s.styles[nh] = s.styles[h]
	s.visible[nh] = 1
	style := s.styles[nh]
	clone := s.paths[nh]

	s.mu.Unlock()
	s.send(PathMsg{Handle: nh, Path: clone, Style: style})

	return nh, nil
}

// Close marks the surface done. The program is quit by whoever runs
// it, usually on RevealDoneMsg plus a key press.
func (s *TeaSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	s.closed = true

	return nil
}
