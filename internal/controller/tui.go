package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tuiTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	tuiHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	tuiFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// TUI implements UI with lipgloss styling for interactive terminals.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Summary prints a styled table built from header, rows and an optional
// footer.
func (t *TUI) Summary(title string, header []string, rows [][]string, footer []string) error {
	if len(header) == 0 {
		return fmt.Errorf("summary %q: empty header", title)
	}

	widths := columnWidths(header, rows, footer)

	_, _ = fmt.Fprintf(t.output, "%s\n\n", tuiTitleStyle.Render(title))
	_, _ = fmt.Fprintf(t.output, "  %s\n", tuiHeaderStyle.Render(formatColumns(header, widths)))

	for _, row := range rows {
		_, _ = fmt.Fprintf(t.output, "  %s\n", formatColumns(row, widths))
	}

	if footer != nil {
		_, _ = fmt.Fprintf(t.output, "  %s\n", tuiFooterStyle.Render(formatColumns(footer, widths)))
	}

	_, _ = fmt.Fprintln(t.output)

	return nil
}

// Infof prints an informational line.
func (t *TUI) Infof(format string, args ...any) {
	_, _ = fmt.Fprintf(t.output, format+"\n", args...)
}

// Errorf prints a styled error line.
func (t *TUI) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.output, "%s\n", tuiErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func columnWidths(header []string, rows [][]string, footer []string) []int {
	widths := make([]int, len(header))

	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	if footer != nil {
		measure(footer)
	}

	return widths
}

func formatColumns(row []string, widths []int) string {
	cells := make([]string, 0, len(row))

	for i, cell := range row {
		width := len(cell)
		if i < len(widths) {
			width = widths[i]
		}

		cells = append(cells, fmt.Sprintf("%-*s", width, cell))
	}

	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
