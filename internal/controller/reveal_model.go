package controller

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aberke/fractals/internal/adapter"
	m "github.com/aberke/fractals/internal/model"
)

// LevelMsg reports the deepest branch level a branched reveal has
// entered so far.
type LevelMsg struct {
	Level int
}

// brailleBits maps a dot position inside a braille cell (x%2, y%4) to
// the bit that lights it. The cell base rune is 0x2800.
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RevealModel renders a live reveal: every path prefix announced by a
// TeaSurface is replotted on a braille canvas as its messages arrive.
type RevealModel struct {
	title       string
	coordWidth  float64
	coordHeight float64
	width       int
	height      int
	order       []adapter.Handle
	paths       map[adapter.Handle]m.Path
	visible     map[adapter.Handle]int
	texts       []adapter.TextMsg
	level       int
	done        bool
	err         error
	progressBar progress.Model
}

// NewRevealModel creates a model plotting paths laid out on a
// coordWidth x coordHeight surface.
func NewRevealModel(title string, coordWidth, coordHeight float64) RevealModel {
	if coordWidth <= 0 {
		coordWidth = 1
	}

	if coordHeight <= 0 {
		coordHeight = 1
	}

	progressBar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return RevealModel{
		title:       title,
		coordWidth:  coordWidth,
		coordHeight: coordHeight,
		paths:       map[adapter.Handle]m.Path{},
		visible:     map[adapter.Handle]int{},
		progressBar: progressBar,
	}
}

// WithSize presets the terminal dimensions, for callers that probe
// them before the first WindowSizeMsg arrives.
func (rm RevealModel) WithSize(width, height int) RevealModel {
	rm.width = width
	rm.height = height
	rm.progressBar.Width = progressWidth(width)

	return rm
}

// Init implements tea.Model. Updates arrive via Program.Send, so no
// initial command is needed.
func (rm RevealModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (rm RevealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.progressBar.Width = progressWidth(rm.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return rm, tea.Quit
		}

	case adapter.PathMsg:
		rm = rm.handlePath(msg)

	case adapter.ExtendMsg:
		rm = rm.handleExtend(msg)

	case adapter.TextMsg:
		rm.texts = append(rm.texts, msg)

	case LevelMsg:
		if msg.Level > rm.level {
			rm.level = msg.Level
		}

	case adapter.RevealDoneMsg:
		rm.done = true
		rm.err = msg.Err
	}

	return rm, nil
}

// handlePath registers new geometry. A repeated handle keeps its
// visible prefix; that is how rotations replace geometry mid-reveal.
func (rm RevealModel) handlePath(msg adapter.PathMsg) RevealModel {
	if _, ok := rm.paths[msg.Handle]; !ok {
		rm.order = append(rm.order, msg.Handle)
		rm.visible[msg.Handle] = 1
	}

	rm.paths[msg.Handle] = msg.Path

	return rm
}

func (rm RevealModel) handleExtend(msg adapter.ExtendMsg) RevealModel {
	if current, ok := rm.visible[msg.Handle]; ok && msg.N > current {
		rm.visible[msg.Handle] = msg.N
	}

	return rm
}

// View implements tea.Model.
func (rm RevealModel) View() string {
	if rm.width == 0 {
		return "Preparing canvas…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 0, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("△ " + rm.title)

	shown, total := rm.segmentCounts()

	summaryLine := fmt.Sprintf(
		"Segments: %s / %s   Paths: %s",
		accentStyle.Render(fmt.Sprintf("%d", shown)),
		accentStyle.Render(fmt.Sprintf("%d", total)),
		accentStyle.Render(fmt.Sprintf("%d", len(rm.order))),
	)

	if rm.level > 0 {
		summaryLine += fmt.Sprintf("   Level: %s", accentStyle.Render(fmt.Sprintf("%d", rm.level)))
	}

	summary := summaryStyle.Render(summaryLine)

	canvas := rm.renderCanvas()

	progressStyle := lipgloss.NewStyle().Padding(0, 0, 0, 2)
	progressView := progressStyle.Render(rm.progressBar.ViewAs(rm.percent()))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render(rm.footerText())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		canvas,
		progressView,
		footer,
	)
}

func (rm RevealModel) footerText() string {
	switch {
	case rm.done && rm.err != nil:
		return fmt.Sprintf("Error: %v • q quit", rm.err)
	case rm.done:
		return "Reveal complete • q quit"
	default:
		return "Revealing… • q quit"
	}
}

// segmentCounts reports drawn and total drawable elements across all
// known paths. The leading MoveTo of each path is not counted.
func (rm RevealModel) segmentCounts() (int, int) {
	shown, total := 0, 0

	for handle, path := range rm.paths {
		segments := len(path) - 1
		if segments < 0 {
			segments = 0
		}

		total += segments

		drawn := rm.visible[handle] - 1
		if drawn > segments {
			drawn = segments
		}

		if drawn > 0 {
			shown += drawn
		}
	}

	return shown, total
}

func (rm RevealModel) percent() float64 {
	shown, total := rm.segmentCounts()
	if total == 0 {
		if rm.done {
			return 1
		}

		return 0
	}

	return float64(shown) / float64(total)
}

// renderCanvas plots the visible prefixes into a braille grid and wraps
// it in a border.
func (rm RevealModel) renderCanvas() string {
	// Display calculations:
	// Screen Height
	// - Title (2)
	// - Summary (1)
	// - Progress (1)
	// - Footer (1)
	// - Border (2)
	// = Left for canvas
	rows := rm.height - 7
	if rows < 4 {
		rows = 4
	}

	// Widths:
	// Window Width
	// - Margin (2)
	// - Border (2)
	// - Padding (2)
	// = Canvas Width
	cols := rm.width - 6
	if cols < 10 {
		cols = 10
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = 0x2800
		}
	}

	// Each cell holds 2x4 braille dots. One dot of margin keeps strokes
	// off the border.
	dotsX := cols * 2
	dotsY := rows * 4
	scale := math.Min(float64(dotsX-2)/rm.coordWidth, float64(dotsY-2)/rm.coordHeight)
	offsetX := (float64(dotsX) - rm.coordWidth*scale) / 2
	offsetY := (float64(dotsY) - rm.coordHeight*scale) / 2

	plotDot := func(p m.Point) {
		x := int(math.Round(p.X*scale + offsetX))
		y := int(math.Round(p.Y*scale + offsetY))

		if x < 0 || y < 0 || x >= dotsX || y >= dotsY {
			return
		}

		grid[y/4][x/2] |= brailleBits[x%2][y%4]
	}

	plotSegment := func(from, to m.Point) {
		steps := int(from.Distance(to)*scale) + 1
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			plotDot(m.Pt(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t))
		}
	}

	for _, handle := range rm.order {
		path := rm.paths[handle]

		visible := rm.visible[handle]
		if visible > len(path) {
			visible = len(path)
		}

		pen := m.Point{}

		for _, element := range path[:visible] {
			if element.Kind == m.MoveToKind {
				pen = element.P0
				continue
			}

			previous := pen
			for _, point := range element.Flatten(pen, 8) {
				plotSegment(previous, point)
				previous = point
			}

			pen = element.End()
		}
	}

	rm.overlayTexts(grid, scale, offsetX, offsetY)

	lines := make([]string, 0, rows)
	for _, row := range grid {
		lines = append(lines, string(row))
	}

	canvasContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return canvasContainer.Render(strings.Join(lines, "\n"))
}

// overlayTexts writes labels into the rune grid, centered on their
// anchor point.
func (rm RevealModel) overlayTexts(grid [][]rune, scale, offsetX, offsetY float64) {
	for _, text := range rm.texts {
		runes := []rune(text.Text)

		row := int(math.Round(text.At.Y*scale+offsetY)) / 4
		col := int(math.Round(text.At.X*scale+offsetX))/2 - len(runes)/2

		if row < 0 || row >= len(grid) {
			continue
		}

		for i, r := range runes {
			if c := col + i; c >= 0 && c < len(grid[row]) {
				grid[row][c] = r
			}
		}
	}
}

func progressWidth(width int) int {
	progressWidth := width - 8

	if progressWidth < 20 {
		progressWidth = 20
	}

	if progressWidth > 60 {
		progressWidth = 60
	}

	return progressWidth
}
