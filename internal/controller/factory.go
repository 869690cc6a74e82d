package controller

import (
	"github.com/spf13/cobra"
)

// NewUI selects the UI implementation. Terminals get the styled TUI,
// pipes and files get the plain SimpleUI.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
