package adapter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	m "github.com/aberke/fractals/internal/model"
)

func TestNewSurface_SVG(t *testing.T) {
	surface, err := NewSurface("svg", &bytes.Buffer{}, 600, 400)
	if err != nil {
		t.Fatalf("NewSurface(svg) error = %v", err)
	}

	if _, ok := surface.(*SVGSurface); !ok {
		t.Fatalf("NewSurface(svg) returned %T, want *SVGSurface", surface)
	}
}

func TestNewSurface_GIF(t *testing.T) {
	surface, err := NewSurface("gif", &bytes.Buffer{}, 600, 400)
	if err != nil {
		t.Fatalf("NewSurface(gif) error = %v", err)
	}

	if _, ok := surface.(*GIFSurface); !ok {
		t.Fatalf("NewSurface(gif) returned %T, want *GIFSurface", surface)
	}
}

func TestNewSurface_UnknownFormat(t *testing.T) {
	_, err := NewSurface("png", &bytes.Buffer{}, 600, 400)
	if !errors.Is(err, m.ErrInvalidParameter) {
		t.Fatalf("NewSurface(png) error = %v, want ErrInvalidParameter", err)
	}
}

func TestIsTTY_WithTerminal(t *testing.T) {
	// Note: This test checks if the function works correctly
	// It will return true if running in a real terminal, false otherwise
	result := IsTTY(os.Stdout)

	// We can't assert exact value as it depends on test environment
	// but we can verify it doesn't panic and returns a bool
	_ = result
}

func TestIsTTY_WithRegularFile(t *testing.T) {
	file, err := os.CreateTemp("", "fractals-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer os.Remove(file.Name())
	defer file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_WithCharDevice(t *testing.T) {
	file, err := os.Open("/dev/null")
	if err != nil {
		t.Skip("/dev/null not available")
	}
	defer file.Close()

	if !IsTTY(file) {
		t.Fatalf("IsTTY(/dev/null) = false, want true")
	}
}

func TestIsTTY_WithNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}
