package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/chart/anim"
	"github.com/chartkit/chartkit/pkg/chart/measure"
	"github.com/chartkit/chartkit/pkg/pipeline"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		axes       string
		steps      int
		anchorZero bool
		packed     bool
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Animate a chart in the terminal",
		Long: `Preview a chart as an animated terminal rendering. Data points rise
from the chart baseline to their final positions. Press r to replay the
animation and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Axes:       axes,
				Steps:      steps,
				AnchorZero: anchorZero,
				Packed:     packed,
			}
			s, err := loadSeries(args[0], &opts)
			if err != nil {
				return err
			}
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}

			m, err := newPreviewModel(s.Values(), opts)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&axes, "axes", "", "visible axes: none, x, y, xy")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of Y axis intervals")
	cmd.Flags().BoolVar(&anchorZero, "anchor-zero", false, "anchor the scale minimum to zero")
	cmd.Flags().BoolVar(&packed, "packed", false, "partition the X axis into equal cells")

	return cmd
}

// =============================================================================
// Preview Model
// =============================================================================

// redrawMsg signals that the animator produced a new frame.
type redrawMsg struct{}

// previewModel is the bubbletea model for the terminal chart preview.
type previewModel struct {
	session *chart.Session
	points  []chart.DataPoint
	redraws chan struct{}
	cols    int
	rows    int
	err     error
}

// previewSurface is the virtual pixel surface the layout runs against.
// Terminal cells are roughly twice as tall as wide, so the surface keeps
// a 2:1 ratio per cell when mapped onto the grid.
const (
	previewSurfaceW = 640
	previewSurfaceH = 400
)

func newPreviewModel(points []chart.DataPoint, opts pipeline.Options) (*previewModel, error) {
	opts.SetLayoutDefaults()
	axis, err := chart.ParseAxis(opts.Axes)
	if err != nil {
		return nil, err
	}

	m := &previewModel{
		points:  points,
		redraws: make(chan struct{}, 1),
		cols:    80,
		rows:    24,
	}
	m.session = chart.NewSession(chart.Config{
		Width:      previewSurfaceW,
		Height:     previewSurfaceH,
		Axes:       axis,
		FontSize:   12,
		YSteps:     opts.Steps,
		AnchorZero: opts.AnchorZero,
		PackedX:    opts.Packed,
	}, measure.Default(), &anim.Interpolator{}, m.requestRedraw)
	return m, nil
}

// requestRedraw is the session's redraw callback. Animation frames land
// faster than the terminal repaints, so pending signals coalesce.
func (m *previewModel) requestRedraw() {
	select {
	case m.redraws <- struct{}{}:
	default:
	}
}

func (m *previewModel) waitForRedraw() tea.Cmd {
	return func() tea.Msg {
		<-m.redraws
		return redrawMsg{}
	}
}

func (m *previewModel) replay() {
	m.session.SetDataAnimated(m.points)
	if _, err := m.session.Layout(); err != nil {
		m.err = err
	}
}

func (m *previewModel) Init() tea.Cmd {
	m.replay()
	return m.waitForRedraw()
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.replay()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
	case redrawMsg:
		return m, m.waitForRedraw()
	}
	return m, nil
}

func (m *previewModel) View() string {
	if m.err != nil {
		return printableError(m.err)
	}

	cols := m.cols
	rows := m.rows - 3
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}

	canvas := newTermCanvas(cols, rows, previewSurfaceW, previewSurfaceH)
	if err := m.session.Draw(canvas); err != nil {
		return StyleDim.Render("computing layout...")
	}

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r replay  q quit"))
	return b.String()
}

func printableError(err error) string {
	return styleIconError.Render(iconError) + " " + err.Error() + "\n" + StyleDim.Render("q quit")
}

// =============================================================================
// Terminal Canvas
// =============================================================================

// Cell kinds drive per-cell styling when the grid is flattened.
const (
	cellEmpty = iota
	cellAxis
	cellLabel
	cellData
)

// termCanvas rasterizes a chart layout onto a rune grid. Layout
// coordinates are in surface pixels; the canvas maps them onto terminal
// cells.
type termCanvas struct {
	cols, rows int
	sx, sy     float64
	runes      [][]rune
	kinds      [][]int
}

func newTermCanvas(cols, rows int, surfaceW, surfaceH float64) *termCanvas {
	c := &termCanvas{
		cols:  cols,
		rows:  rows,
		sx:    float64(cols-1) / surfaceW,
		sy:    float64(rows-1) / surfaceH,
		runes: make([][]rune, rows),
		kinds: make([][]int, rows),
	}
	for y := range c.runes {
		c.runes[y] = make([]rune, cols)
		c.kinds[y] = make([]int, cols)
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
		}
	}
	return c
}

func (c *termCanvas) cell(x, y float64) (int, int) {
	cx := int(x*c.sx + 0.5)
	cy := int(y*c.sy + 0.5)
	if cx < 0 {
		cx = 0
	}
	if cx >= c.cols {
		cx = c.cols - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= c.rows {
		cy = c.rows - 1
	}
	return cx, cy
}

func (c *termCanvas) set(cx, cy int, r rune, kind int) {
	if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
		return
	}
	c.runes[cy][cx] = r
	c.kinds[cy][cx] = kind
}

func (c *termCanvas) text(cx, cy int, s string, kind int) {
	start := cx - len(s)/2
	for i, r := range s {
		c.set(start+i, cy, r, kind)
	}
}

// DrawXLabel paints an X axis tick label centered at the label position.
func (c *termCanvas) DrawXLabel(l chart.Label, fontSize float64) {
	cx, cy := c.cell(l.X, l.Y)
	c.text(cx, cy, l.Text, cellLabel)
}

// DrawYLabel paints a Y axis tick label centered at the label position.
func (c *termCanvas) DrawYLabel(l chart.Label, fontSize float64) {
	cx, cy := c.cell(l.X, l.Y)
	c.text(cx, cy, l.Text, cellLabel)
}

// DrawData paints the frame border and the data points, connecting
// consecutive points with line segments.
func (c *termCanvas) DrawData(frame chart.Rect, points []chart.DataPoint) {
	left, top := c.cell(frame.Left, frame.Top)
	right, bottom := c.cell(frame.Right, frame.Bottom)
	for cy := top; cy <= bottom; cy++ {
		c.set(left, cy, '│', cellAxis)
	}
	for cx := left; cx <= right; cx++ {
		c.set(cx, bottom, '─', cellAxis)
	}
	c.set(left, bottom, '└', cellAxis)

	for i := 1; i < len(points); i++ {
		x0, y0 := c.cell(points[i-1].X, points[i-1].Y)
		x1, y1 := c.cell(points[i].X, points[i].Y)
		c.line(x0, y0, x1, y1)
	}
	for _, p := range points {
		cx, cy := c.cell(p.X, p.Y)
		c.set(cx, cy, '●', cellData)
	}
}

// line plots a segment between two cells using Bresenham's algorithm.
func (c *termCanvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, '·', cellData)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var (
	styleCanvasAxis  = lipgloss.NewStyle().Foreground(colorDim)
	styleCanvasLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleCanvasData  = lipgloss.NewStyle().Foreground(colorCyan)
)

// String flattens the grid into styled terminal output.
func (c *termCanvas) String() string {
	var b strings.Builder
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			r := string(c.runes[cy][cx])
			switch c.kinds[cy][cx] {
			case cellAxis:
				r = styleCanvasAxis.Render(r)
			case cellLabel:
				r = styleCanvasLabel.Render(r)
			case cellData:
				r = styleCanvasData.Render(r)
			}
			b.WriteString(r)
		}
		if cy < c.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

var _ chart.Canvas = (*termCanvas)(nil)
