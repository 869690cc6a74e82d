package adapter

import (
	"fmt"
	"io"
	"os"

	m "github.com/aberke/fractals/internal/model"
)

// NewSurface creates a file surface for the given format, "svg" or
// "gif", writing to out. Terminal surfaces are built with NewTea
// instead, since they need a running program to send to.
func NewSurface(format string, out io.Writer, w, h float64) (Surface, error) {
	switch format {
	case "svg":
		return NewSVG(out, w, h), nil
	case "gif":
		return NewGIF(out, w, h), nil
	}

	return nil, fmt.Errorf("output format %q: %w", format, m.ErrInvalidParameter)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	// Check if writer is a *os.File
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	// Get file info
	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	// Check if it's a character device (terminal)
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
