package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aberke/fractals/internal/adapter"
	"github.com/aberke/fractals/internal/controller"
	"github.com/aberke/fractals/internal/domain"
	m "github.com/aberke/fractals/internal/model"
)

const statsLongDescription = `Stats prints how a curve grows with depth: the number of path elements
the generator emits, the drawn segments among them and the pen jumps.
The geometry is computed for real on a unit canvas, so the numbers are
exactly what render would animate.`

var statsFromFlag int
var statsToFlag int

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "stats {triangle|arrowhead|tree}",
		Short:     "Show how a curve grows with depth",
		Long:      statsLongDescription,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"triangle", "arrowhead", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0])
		},
	}
	cmd.Flags().IntVar(&statsFromFlag, "from", 0, "first depth")
	cmd.Flags().IntVar(&statsToFlag, "to", 6, "last depth")

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, curve string) error {
	if statsFromFlag < 0 || statsToFlag < statsFromFlag {
		return fmt.Errorf("depth range %d..%d: %w", statsFromFlag, statsToFlag, m.ErrInvalidParameter)
	}

	rows := make([][]string, 0, statsToFlag-statsFromFlag+1)
	totalElements := 0

	for depth := statsFromFlag; depth <= statsToFlag; depth++ {
		path, err := statsPath(curve, depth)
		if err != nil {
			return err
		}

		moves := path.Segments(m.MoveToKind)
		rows = append(rows, []string{
			fmt.Sprintf("%d", depth),
			fmt.Sprintf("%d", len(path)),
			fmt.Sprintf("%d", len(path)-moves),
			fmt.Sprintf("%d", moves),
		})
		totalElements += len(path)
	}

	ui := controller.NewUI(cmd, adapter.IsTTY(os.Stdout))
	footer := []string{"Total", fmt.Sprintf("%d", totalElements), "", ""}

	return ui.Summary(
		fmt.Sprintf("Growth of %s", curve),
		[]string{"Depth", "Elements", "Segments", "Pen Jumps"},
		rows,
		footer,
	)
}

// statsPath generates the curve on a unit canvas. The counts depend
// only on depth, never on placement.
func statsPath(curve string, depth int) (m.Path, error) {
	options := m.DefaultOptions()
	options.Depth = depth

	switch curve {
	case "triangle":
		return domain.SierpinskiTriangle(m.Pt(0, 0), 1, options)
	case "arrowhead":
		return domain.SierpinskiArrowhead(m.Pt(0, 0), 1, options)
	case "tree":
		return domain.PythagorasTree(m.Pt(0, 0), 1, options, nil)
	}

	return nil, fmt.Errorf("unknown curve %q: %w", curve, m.ErrInvalidParameter)
}
