// Package controller renders command results: summary tables for the
// plain CLI paths and the Bubble Tea model behind live reveals.
package controller

// UI displays command results. Implementations can use different
// output methods (simple text, styled terminal output).
type UI interface {
	// Summary renders a titled table. footer may be nil.
	Summary(title string, header []string, rows [][]string, footer []string) error
	// Infof prints an informational line.
	Infof(format string, args ...any)
	// Errorf prints an error line.
	Errorf(format string, args ...any)
}
