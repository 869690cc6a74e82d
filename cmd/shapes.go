package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aberke/fractals/internal/adapter"
	"github.com/aberke/fractals/internal/controller"
	m "github.com/aberke/fractals/internal/model"
)

// shapesCmd represents the shapes command.
var shapesCmd = newShapesCmd()

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List supported curves and edge shapes",
		Args:  cobra.ExactArgs(0),
		RunE:  runShapes,
	}
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var edgeKindDescriptions = map[m.EdgeKind]string{
	m.EdgeStraight:         "plain line segment",
	m.EdgeQuad:             "quadratic bulge off the chord",
	m.EdgeArc:              "circular arc bow",
	m.EdgeCatmullRom:       "spline segment with fixed tension",
	m.EdgeCatmullRomRandom: "spline segment with a random tension per edge",
}

func runShapes(cmd *cobra.Command, _ []string) error {
	ui := controller.NewUI(cmd, adapter.IsTTY(os.Stdout))

	err := ui.Summary(
		"Curves",
		[]string{"Name", "Construction", "Reveal"},
		[][]string{
			{"triangle", "recursive subdivision or FIFO queue", "sequential"},
			{"arrowhead", "single unbroken walk", "sequential"},
			{"tree", "branching squares", "branched per subtree"},
		},
		nil,
	)
	if err != nil {
		return err
	}

	kinds := m.EdgeKinds()
	rows := make([][]string, 0, len(kinds))

	for _, kind := range kinds {
		rows = append(rows, []string{kind.String(), edgeKindDescriptions[kind]})
	}

	return ui.Summary("Edge shapes (tree)", []string{"Name", "Shape"}, rows, nil)
}
