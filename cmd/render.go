package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aberke/fractals/internal/adapter"
	"github.com/aberke/fractals/internal/controller"
	"github.com/aberke/fractals/internal/domain"
	m "github.com/aberke/fractals/internal/model"
)

const renderLongDescription = `Render computes one fractal curve and replays it segment by segment.

Curves:
  triangle   Sierpinski triangle, recursive or queue construction
  arrowhead  Sierpinski arrowhead curve, a single unbroken walk
  tree       Pythagoras tree with a pluggable edge shape

Tree paths reveal branch by branch, two subtrees at a time; pass
--sequential to animate the squares in generation order instead. The
result is written as an animated SVG or GIF, or revealed live in the
terminal with --live.`

var renderDepthFlag int
var renderOrientationFlag int
var renderStrategyFlag string
var renderEdgeFlag string
var renderTensionFlag float64
var renderSeedFlag int64
var renderLevelChangeFlag string
var renderOutFlag string
var renderFormatFlag string
var renderIntervalFlag time.Duration
var renderWidthFlag float64
var renderHeightFlag float64
var renderSequentialFlag bool
var renderLiveFlag bool
var renderStrokeFlag string
var renderStrokeWidthFlag float64

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "render {triangle|arrowhead|tree}",
		Short:     "Render one fractal curve as a staged reveal",
		Long:      renderLongDescription,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"triangle", "arrowhead", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0])
		},
	}
	cmd.Flags().IntVarP(&renderDepthFlag, "depth", "d", 4, "recursion depth")
	cmd.Flags().IntVar(&renderOrientationFlag, "orientation", 1, "+1 or -1 flips the curve")
	cmd.Flags().StringVar(&renderStrategyFlag, "strategy", "recursive", "triangle construction: recursive or queue")
	cmd.Flags().StringVar(&renderEdgeFlag, "edge", "straight", "tree edge shape: straight, quad, arc, catmull or catmull-random")
	cmd.Flags().Float64Var(&renderTensionFlag, "tension", 0.5, "catmull edge tension in [0, 1]")
	cmd.Flags().Int64Var(&renderSeedFlag, "seed", 0, "seed for catmull-random edges, 0 for a fixed default")
	cmd.Flags().StringVar(&renderLevelChangeFlag, "level-change", "", "per-child triangle depth decrement as L,R,V (e.g. 1,2,1)")
	cmd.Flags().StringVarP(&renderOutFlag, "out", "o", "", "output file, stdout when empty")
	cmd.Flags().StringVarP(&renderFormatFlag, "format", "f", "svg", "output format: svg or gif")
	cmd.Flags().DurationVarP(&renderIntervalFlag, "interval", "i", domain.DefaultInterval, "delay between reveal steps")
	cmd.Flags().Float64Var(&renderWidthFlag, "width", 600, "canvas width")
	cmd.Flags().Float64Var(&renderHeightFlag, "height", 400, "canvas height")
	cmd.Flags().BoolVar(&renderSequentialFlag, "sequential", false, "reveal tree squares one group at a time instead of branching")
	cmd.Flags().BoolVar(&renderLiveFlag, "live", false, "reveal on the terminal instead of writing a file")
	cmd.Flags().StringVar(&renderStrokeFlag, "stroke", "black", "stroke color")
	cmd.Flags().Float64Var(&renderStrokeWidthFlag, "stroke-width", 1, "stroke width")

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, curve string) error {
	options, err := renderOptions()
	if err != nil {
		return err
	}

	path, title, err := buildCurve(curve, options)
	if err != nil {
		return err
	}

	style := m.Style{Stroke: renderStrokeFlag, Width: renderStrokeWidthFlag}
	branched := curve == "tree" && !renderSequentialFlag

	if renderLiveFlag {
		return runLiveReveal(cmd, title, path, style, branched)
	}

	return runFileReveal(cmd, title, path, style, branched)
}

// renderOptions collects the generator flags into normalized Options.
func renderOptions() (m.Options, error) {
	options := m.DefaultOptions()
	options.Depth = renderDepthFlag
	options.Orientation = renderOrientationFlag
	options.Tension = renderTensionFlag
	options.Seed = renderSeedFlag

	edge, err := m.ParseEdgeKind(renderEdgeFlag)
	if err != nil {
		return m.Options{}, err
	}

	options.Edge = edge

	levelChange, err := parseLevelChangeFlag(renderLevelChangeFlag)
	if err != nil {
		return m.Options{}, err
	}

	options.LevelChange = levelChange

	return options.Normalize(), nil
}

// parseLevelChangeFlag reads the L,R,V triple. An empty flag keeps the
// default decrement of one per child.
func parseLevelChangeFlag(flag string) (m.LevelChange, error) {
	if flag == "" {
		return m.DefaultLevelChange(), nil
	}

	var lc m.LevelChange

	if _, err := fmt.Sscanf(flag, "%d,%d,%d", &lc.Left, &lc.Right, &lc.Vertical); err != nil {
		return m.LevelChange{}, fmt.Errorf("level change %q, want L,R,V: %w", flag, m.ErrInvalidParameter)
	}

	if err := lc.Validate(); err != nil {
		return m.LevelChange{}, err
	}

	return lc, nil
}

// buildCurve generates the requested curve placed on the flag-sized
// canvas and returns it with a display title.
func buildCurve(curve string, options m.Options) (m.Path, string, error) {
	w, h := renderWidthFlag, renderHeightFlag
	if w <= 0 || h <= 0 {
		return nil, "", fmt.Errorf("canvas %gx%g: %w", w, h, m.ErrInvalidParameter)
	}

	switch curve {
	case "triangle":
		center := m.Pt(w/2, h/2)
		side := 0.8 * math.Min(w, h)

		switch renderStrategyFlag {
		case "recursive":
			path, err := domain.SierpinskiTriangle(center, side, options)
			return path, "Sierpinski Triangle", err
		case "queue":
			path, err := domain.SierpinskiTriangleIterative(center, side, options)
			return path, "Sierpinski Triangle (queue)", err
		}

		return nil, "", fmt.Errorf("strategy %q, want recursive or queue: %w", renderStrategyFlag, m.ErrInvalidParameter)

	case "arrowhead":
		side := 0.8 * math.Min(w, h)
		height := domain.TriangleHeight(domain.Angle60, side)
		start := m.Pt(w/2-side/2, h/2+float64(options.Orientation)*height/2)

		path, err := domain.SierpinskiArrowhead(start, side, options)

		return path, "Sierpinski Arrowhead", err

	case "tree":
		edge, err := domain.EdgeForKind(options.Edge, options.Tension, options.Seed)
		if err != nil {
			return nil, "", err
		}

		side := math.Min(w, h) / 6
		center := m.Pt(w/2, h/2+float64(options.Orientation)*(h/2-side*1.25))

		path, err := domain.PythagorasTree(center, side, options, edge)

		return path, "Pythagoras Tree", err
	}

	return nil, "", fmt.Errorf("unknown curve %q: %w", curve, m.ErrInvalidParameter)
}

// revealOnSurface replays the path, branching tree reveals per subtree.
func revealOnSurface(surface adapter.Surface, path m.Path, style m.Style, branched bool, onLevel func(int)) error {
	if branched {
		return domain.RevealBranched(surface, path, style, renderIntervalFlag, domain.SquareGroupLen, onLevel)
	}

	return domain.Reveal(surface, path, style, renderIntervalFlag)
}

// runFileReveal renders to an SVG or GIF writer, which encodes the
// animation timing in the artifact instead of pacing in real time.
func runFileReveal(cmd *cobra.Command, title string, path m.Path, style m.Style, branched bool) error {
	out := cmd.OutOrStdout()

	if renderOutFlag != "" {
		file, err := os.Create(renderOutFlag)
		if err != nil {
			return fmt.Errorf("create %s: %w", renderOutFlag, err)
		}
		defer file.Close()

		out = file
	}

	surface, err := adapter.NewSurface(renderFormatFlag, out, renderWidthFlag, renderHeightFlag)
	if err != nil {
		return err
	}

	if err := revealOnSurface(surface, path, style, branched, nil); err != nil {
		return err
	}

	if err := surface.Close(); err != nil {
		return err
	}

	// With no output file the artifact itself goes to stdout, so the
	// summary line would corrupt it.
	if renderOutFlag == "" {
		return nil
	}

	ui := controller.NewUI(cmd, adapter.IsTTY(os.Stdout))
	ui.Infof("wrote %s: %s, %d elements", renderOutFlag, title, len(path))

	return nil
}

// runLiveReveal reveals on the terminal: the surface forwards every
// step to a Bubble Tea program and paces it in real time.
func runLiveReveal(cmd *cobra.Command, title string, path m.Path, style m.Style, branched bool) error {
	out := cmd.OutOrStdout()
	model := controller.NewRevealModel(title, renderWidthFlag, renderHeightFlag)

	// Get initial terminal size
	if f, ok := out.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.WithSize(width, height)
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen())
	surface := adapter.NewTea(program.Send, renderWidthFlag, renderHeightFlag)

	go func() {
		err := revealOnSurface(surface, path, style, branched, func(level int) {
			program.Send(controller.LevelMsg{Level: level})
		})
		program.Send(adapter.RevealDoneMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
