package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aberke/fractals/internal/adapter"
	"github.com/aberke/fractals/internal/controller"
	"github.com/aberke/fractals/internal/domain"
	m "github.com/aberke/fractals/internal/model"
)

const rowLongDescription = `Row lays out several instances of one curve side by side, the depth
growing by one per instance and the orientation alternating. Each
instance gets a static reference outline and a depth label, then the
curves reveal left to right.

Neighboring outlines are congruent mirror images, so every outline
after the first is produced by cloning the previous one and rotating
the clone by half a turn about the midpoint between the two centers.`

var rowCountFlag int
var rowMinDepthFlag int
var rowMaxDepthFlag int
var rowWidthFlag float64
var rowHeightFlag float64
var rowOutFlag string
var rowFormatFlag string
var rowIntervalFlag time.Duration
var rowEdgeFlag string
var rowTensionFlag float64

// rowCmd represents the row command.
var rowCmd = newRowCmd()

func newRowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "row {triangle|arrowhead|tree}",
		Short:     "Render a row of instances at increasing depth",
		Long:      rowLongDescription,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"triangle", "arrowhead", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRow(cmd, args[0])
		},
	}
	cmd.Flags().IntVarP(&rowCountFlag, "count", "c", 3, "number of instances")
	cmd.Flags().IntVar(&rowMinDepthFlag, "min-depth", 1, "depth of the leftmost instance")
	cmd.Flags().IntVar(&rowMaxDepthFlag, "max-depth", -1, "depth cap, negative for uncapped")
	cmd.Flags().Float64Var(&rowWidthFlag, "width", 900, "canvas width")
	cmd.Flags().Float64Var(&rowHeightFlag, "height", 300, "canvas height")
	cmd.Flags().StringVarP(&rowOutFlag, "out", "o", "", "output file, stdout when empty")
	cmd.Flags().StringVarP(&rowFormatFlag, "format", "f", "svg", "output format: svg or gif")
	cmd.Flags().DurationVarP(&rowIntervalFlag, "interval", "i", domain.DefaultInterval, "delay between reveal steps")
	cmd.Flags().StringVar(&rowEdgeFlag, "edge", "straight", "tree edge shape")
	cmd.Flags().Float64Var(&rowTensionFlag, "tension", 0.5, "catmull edge tension in [0, 1]")

	return cmd
}

func init() {
	rootCmd.AddCommand(rowCmd)
}

func runRow(cmd *cobra.Command, curve string) error {
	curveGen, baseGen, err := rowGenerators(curve)
	if err != nil {
		return err
	}

	instances, err := domain.Row(domain.RowSpec{
		Width:    rowWidthFlag,
		Height:   rowHeightFlag,
		Count:    rowCountFlag,
		MinDepth: rowMinDepthFlag,
		MaxDepth: rowMaxDepthFlag,
		Curve:    curveGen,
		Base:     baseGen,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if rowOutFlag != "" {
		file, err := os.Create(rowOutFlag)
		if err != nil {
			return fmt.Errorf("create %s: %w", rowOutFlag, err)
		}
		defer file.Close()

		out = file
	}

	surface, err := adapter.NewSurface(rowFormatFlag, out, rowWidthFlag, rowHeightFlag)
	if err != nil {
		return err
	}

	if err := domain.RenderRow(surface, instances, m.DefaultStyle(), rowIntervalFlag); err != nil {
		return err
	}

	if err := surface.Close(); err != nil {
		return err
	}

	if rowOutFlag == "" {
		return nil
	}

	return rowSummary(cmd, curve, instances)
}

func rowSummary(cmd *cobra.Command, curve string, instances []domain.Instance) error {
	ui := controller.NewUI(cmd, adapter.IsTTY(os.Stdout))

	rows := make([][]string, 0, len(instances))
	total := 0

	for i, inst := range instances {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", inst.Depth),
			fmt.Sprintf("%+d", inst.Orientation),
			fmt.Sprintf("%d", len(inst.Curve)),
		})
		total += len(inst.Curve)
	}

	footer := []string{"Total", "", "", fmt.Sprintf("%d", total)}

	return ui.Summary(
		fmt.Sprintf("Row of %s, written to %s", curve, rowOutFlag),
		[]string{"Instance", "Depth", "Orientation", "Elements"},
		rows,
		footer,
	)
}

// rowGenerators pairs each curve with the reference outline drawn
// statically beneath it.
func rowGenerators(curve string) (domain.Generator, domain.Generator, error) {
	switch curve {
	case "triangle":
		gen := func(center m.Point, side float64, depth, orientation int) (m.Path, error) {
			options := m.DefaultOptions()
			options.Depth = depth
			options.Orientation = orientation

			return domain.SierpinskiTriangle(center, side, options)
		}

		return gen, outlineBase, nil

	case "arrowhead":
		gen := func(center m.Point, side float64, depth, orientation int) (m.Path, error) {
			options := m.DefaultOptions()
			options.Depth = depth
			options.Orientation = orientation

			height := domain.TriangleHeight(domain.Angle60, side)
			start := m.Pt(center.X-side/2, center.Y+float64(orientation)*height/3)

			return domain.SierpinskiArrowhead(start, side, options)
		}

		return gen, outlineBase, nil

	case "tree":
		edgeKind, err := m.ParseEdgeKind(rowEdgeFlag)
		if err != nil {
			return nil, nil, err
		}

		gen := func(center m.Point, side float64, depth, orientation int) (m.Path, error) {
			options := m.DefaultOptions()
			options.Depth = depth
			options.Orientation = orientation
			options.Edge = edgeKind
			options.Tension = rowTensionFlag

			edge, err := domain.EdgeForKind(edgeKind, rowTensionFlag, 0)
			if err != nil {
				return nil, err
			}

			trunkCenter, trunkSide := rowTreeTrunk(center, side, orientation)

			return domain.PythagorasTree(trunkCenter, trunkSide, options, edge)
		}

		base := func(center m.Point, side float64, depth, orientation int) (m.Path, error) {
			options := m.DefaultOptions()
			options.Depth = 0
			options.Orientation = orientation

			trunkCenter, trunkSide := rowTreeTrunk(center, side, orientation)

			return domain.PythagorasTree(trunkCenter, trunkSide, options, domain.StraightEdge())
		}

		return gen, base, nil
	}

	return nil, nil, fmt.Errorf("unknown curve %q: %w", curve, m.ErrInvalidParameter)
}

// outlineBase draws the triangle the curve inscribes. The curve bulges
// away from its baseline, which is the flipped-orientation outline.
func outlineBase(center m.Point, side float64, _, orientation int) (m.Path, error) {
	return domain.TriangleOutline(center, side, -orientation)
}

// rowTreeTrunk places a tree's trunk inside an instance slot so the
// grown tree stays within it: the trunk sits a quarter square in from
// the slot edge the tree grows away from.
func rowTreeTrunk(center m.Point, side float64, orientation int) (m.Point, float64) {
	trunk := side / 6
	offset := float64(orientation) * (side/2 - trunk*0.75)

	return m.Pt(center.X, center.Y+offset), trunk
}
