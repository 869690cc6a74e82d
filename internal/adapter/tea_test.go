package adapter

import (
	"errors"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/aberke/fractals/internal/model"
)

func TestTeaSurfaceMessages(t *testing.T) {
	var msgs []tea.Msg

	s := NewTea(func(msg tea.Msg) { msgs = append(msgs, msg) }, 100, 80)

	if w, h := s.Size(); w != 100 || h != 80 {
		t.Errorf("Size() = %g x %g, want 100 x 80", w, h)
	}

	path := m.Path{m.MoveTo(m.Pt(0, 0)), m.LineTo(m.Pt(10, 0))}

	h, err := s.AddPath(path, m.DefaultStyle())
	if err != nil {
		t.Fatalf("AddPath() error = %v", err)
	}

	if err := s.Extend(h, 2, 0); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if err := s.Text(m.Pt(50, 70), "depth 0"); err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	if len(msgs) != 3 {
		t.Fatalf("%d messages, want 3", len(msgs))
	}

	added, ok := msgs[0].(PathMsg)
	if !ok {
		t.Fatalf("first message %T, want PathMsg", msgs[0])
	}

	if added.Handle != h || len(added.Path) != len(path) {
		t.Errorf("PathMsg = %+v, want handle %d with %d elements", added, h, len(path))
	}

	extended, ok := msgs[1].(ExtendMsg)
	if !ok {
		t.Fatalf("second message %T, want ExtendMsg", msgs[1])
	}

	if extended.Handle != h || extended.N != 2 {
		t.Errorf("ExtendMsg = %+v, want handle %d to 2", extended, h)
	}

	if _, ok := msgs[2].(TextMsg); !ok {
		t.Fatalf("third message %T, want TextMsg", msgs[2])
	}
}

func TestTeaSurfaceRotateAnnouncesGeometry(t *testing.T) {
	var msgs []tea.Msg

	s := NewTea(func(msg tea.Msg) { msgs = append(msgs, msg) }, 100, 80)

	h, err := s.AddPath(m.Path{m.MoveTo(m.Pt(0, 0)), m.LineTo(m.Pt(10, 0))}, m.DefaultStyle())
	if err != nil {
		t.Fatalf("AddPath() error = %v", err)
	}

	if err := s.Rotate(h, math.Pi, m.Pt(5, 0)); err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}

	rotated, ok := msgs[len(msgs)-1].(PathMsg)
	if !ok {
		t.Fatalf("last message %T, want PathMsg", msgs[len(msgs)-1])
	}

	if rotated.Handle != h {
		t.Errorf("rotated PathMsg handle = %d, want %d", rotated.Handle, h)
	}

	if got := rotated.Path[0].P0; got.Distance(m.Pt(10, 0)) > 1e-9 {
		t.Errorf("rotated start = %v, want (10, 0)", got)
	}

	clone, err := s.Clone(h)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	if clone == h {
		t.Fatalf("Clone() returned the original handle")
	}

	cloned, ok := msgs[len(msgs)-1].(PathMsg)
	if !ok {
		t.Fatalf("last message %T, want PathMsg", msgs[len(msgs)-1])
	}

	if cloned.Handle != clone {
		t.Errorf("clone PathMsg handle = %d, want %d", cloned.Handle, clone)
	}
}

func TestTeaSurfaceExtendPaces(t *testing.T) {
	s := NewTea(func(tea.Msg) {}, 100, 80)

	h, err := s.AddPath(m.Path{m.MoveTo(m.Pt(0, 0)), m.LineTo(m.Pt(10, 0))}, m.DefaultStyle())
	if err != nil {
		t.Fatalf("AddPath() error = %v", err)
	}

	start := time.Now()

	if err := s.Extend(h, 2, 10*time.Millisecond); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Extend returned after %v, want at least 10ms", elapsed)
	}
}

func TestTeaSurfaceErrors(t *testing.T) {
	s := NewTea(func(tea.Msg) {}, 100, 80)

	if _, err := s.AddPath(m.Path{m.LineTo(m.Pt(1, 1))}, m.DefaultStyle()); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("AddPath(no MoveTo) error = %v, want ErrInvalidParameter", err)
	}

	h, err := s.AddPath(m.Path{m.MoveTo(m.Pt(0, 0)), m.LineTo(m.Pt(10, 0))}, m.DefaultStyle())
	if err != nil {
		t.Fatalf("AddPath() error = %v", err)
	}

	if err := s.Extend(h+1, 2, 0); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("Extend(unknown handle) error = %v, want ErrInvalidParameter", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := s.Extend(h, 2, 0); !errors.Is(err, m.ErrInvalidParameter) {
		t.Errorf("Extend(after close) error = %v, want ErrInvalidParameter", err)
	}
}
