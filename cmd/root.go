// Package cmd provides the root command and CLI setup for fractals.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aberke/fractals/internal/logging"
)

var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractals",
		Short: "Render self-similar curves as staged reveals",
		Long: `Fractals computes self-similar curves, the Sierpinski triangle, the
Sierpinski arrowhead curve and the Pythagoras tree, and replays each
one segment by segment on a drawing surface.

Surfaces:
  svg     animated vector output, one reveal step per segment
  gif     animated raster output
  --live  reveals on the terminal itself instead of writing a file`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verboseFlag {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log generator and surface progress to stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
