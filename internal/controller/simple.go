package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer. It emits
// plain tables that survive pipes and redirects.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Summary prints a titled table built from header, rows and an optional
// footer.
func (s *SimpleUI) Summary(title string, header []string, rows [][]string, footer []string) error {
	if len(header) == 0 {
		return fmt.Errorf("summary %q: empty header", title)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(columnAlignment(len(header)))

	for _, row := range rows {
		table.Append(row)
	}

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()
	s.printf("%s\n\n%s", title, tableBuffer.String())

	return nil
}

// Infof prints an informational line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.printf(format+"\n", args...)
}

// Errorf prints an error line to the command's error writer.
func (s *SimpleUI) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// columnAlignment keeps the first column left aligned and centers the
// numeric columns that follow it.
func columnAlignment(columns int) []int {
	alignment := make([]int, columns)
	alignment[0] = tablewriter.ALIGN_LEFT

	for i := 1; i < columns; i++ {
		alignment[i] = tablewriter.ALIGN_CENTER
	}

	return alignment
}
