package chart

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/chartkit/chartkit/pkg/chart/measure"
	"github.com/chartkit/chartkit/pkg/errors"
)

// Default layout parameters.
const (
	// DefaultFontSize is the default axis label font size in pixels.
	DefaultFontSize = 12.0

	// DefaultYSteps is the default number of Y axis intervals, producing
	// DefaultYSteps+1 tick labels from min to max.
	DefaultYSteps = 3
)

// =============================================================================
// Config
// =============================================================================

// Config holds the inputs a layout pass consumes from the host surface.
type Config struct {
	// Width and Height are the drawable surface size in pixels.
	Width  float64
	Height float64

	// Padding is the caller-supplied outer padding box, applied before
	// axis-label padding is negotiated.
	Padding Paddings

	// Axes selects which label sets are measured, placed, and drawn.
	Axes Axis

	// FontSize is the axis label font size. Defaults to DefaultFontSize.
	FontSize float64

	// YSteps is the number of Y axis intervals. Defaults to DefaultYSteps.
	YSteps int

	// AnchorZero forces the scale minimum to zero (bar-chart baselines).
	AnchorZero bool

	// PackedX partitions the X axis into equal cells instead of anchoring
	// the first and last label to the frame edges.
	PackedX bool

	// Format renders Y tick values as text. Defaults to DefaultFormatter.
	Format Formatter

	// Logger receives debug output. Defaults to a discard logger.
	Logger *log.Logger
}

func (c *Config) setDefaults() {
	if c.FontSize == 0 {
		c.FontSize = DefaultFontSize
	}
	if c.YSteps == 0 {
		c.YSteps = DefaultYSteps
	}
	if c.Format == nil {
		c.Format = DefaultFormatter
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// =============================================================================
// Animator
// =============================================================================

// Animator is the animation collaborator. Start is a fire-and-forget
// handoff: the animator receives a private copy of the projected points
// and is expected to progressively mutate their screen positions from
// the baseline toward their already-projected targets, invoking redraw
// after each update. The session publishes the copy's positions into
// the cached snapshot inside the redraw callback, before the host
// repaints, so a concurrent draw always observes a whole frame. The
// returned stop function cancels the run; a new data set supersedes the
// animation by calling it.
//
// The layout engine never waits on the animator.
type Animator interface {
	Start(baseline float64, points []DataPoint, redraw func()) (stop func())
}

// =============================================================================
// Layout State
// =============================================================================

// LayoutState is the two-valued result of a layout pass. The distinction
// lets the host avoid drawing stale or zeroed positions before the
// animation's first frame lands.
type LayoutState int

const (
	// LayoutComputed means this call performed the layout pass; the host
	// should wait for the next redraw request before drawing.
	LayoutComputed LayoutState = iota

	// LayoutReady means the data set was already processed; the cached
	// snapshot is safe to draw immediately.
	LayoutReady
)

// String returns a short name for the state.
func (s LayoutState) String() string {
	if s == LayoutReady {
		return "ready"
	}
	return "computed"
}

// =============================================================================
// Session
// =============================================================================

// Session is the chart layout state machine. It owns one data set at a
// time and computes its layout exactly once: the first Layout call after
// a data assignment resolves the scale, negotiates axis paddings, places
// every label, projects every point, and hands off to the animator; every
// later call returns the cached snapshot untouched. Supplying a new data
// set atomically discards the snapshot and resets the latch.
type Session struct {
	cfg      Config
	measurer measure.Measurer
	animator Animator
	redraw   func()
	logger   *log.Logger

	mu       sync.Mutex
	data     []DataPoint // label/value targets, no screen positions
	xTexts   []string
	yTexts   []string
	scale    Scale
	animate  bool
	snap     *Snapshot
	stopAnim func()
}

// NewSession creates a layout session.
//
// The measurer provides the text measurement capability; nil selects
// measure.Default(). The animator and redraw handle are optional: without
// an animator, layout completion requests a redraw directly.
func NewSession(cfg Config, m measure.Measurer, a Animator, redraw func()) *Session {
	cfg.setDefaults()
	if m == nil {
		m = measure.Default()
	}
	return &Session{
		cfg:      cfg,
		measurer: m,
		animator: a,
		redraw:   redraw,
		logger:   cfg.Logger,
	}
}

// SetData installs a new data set, replacing the current one wholesale.
//
// The scale and both label text sequences are regenerated eagerly, the
// processed latch resets, and any in-flight animation is superseded. A
// redraw request fires synchronously so the host schedules a fresh
// layout pass.
func (s *Session) SetData(points []DataPoint) {
	s.setData(points, false)
}

// SetDataAnimated installs a new data set like SetData, but the next
// layout pass hands the projected points to the animation collaborator
// instead of requesting an immediate redraw.
func (s *Session) SetDataAnimated(points []DataPoint) {
	s.setData(points, true)
}

func (s *Session) setData(points []DataPoint, animate bool) {
	s.mu.Lock()

	if s.stopAnim != nil {
		s.stopAnim()
		s.stopAnim = nil
	}

	s.data = make([]DataPoint, len(points))
	for i, p := range points {
		s.data[i] = DataPoint{Label: p.Label, Value: p.Value}
	}

	// Derived state is regenerated on assignment, not lazily on first
	// access, so a stale cache can never survive a data swap.
	s.scale = ResolveScale(s.data, s.cfg.AnchorZero)
	s.xTexts = make([]string, len(s.data))
	for i, p := range s.data {
		s.xTexts[i] = p.Label
	}
	s.yTexts = yTickTexts(s.scale, s.cfg.YSteps, s.cfg.Format)

	s.animate = animate
	s.snap = nil
	s.mu.Unlock()

	s.logger.Debug("data set installed", "points", len(points), "animate", animate)
	s.requestRedraw()
}

// Layout is the per-frame layout entry point.
//
// A data set with fewer than two entries fails with ErrCodeInvalidData:
// the interpolation and step math are undefined for it, and no partial
// layout is produced. If the current data set was already processed, the
// call short-circuits with LayoutReady and no side effects. Otherwise the
// pass runs, the snapshot is cached, the animation handoff fires, and
// LayoutComputed tells the host to wait for the next redraw request.
func (s *Session) Layout() (LayoutState, error) {
	s.mu.Lock()

	if len(s.data) < 2 {
		n := len(s.data)
		s.mu.Unlock()
		return LayoutComputed, errors.New(errors.ErrCodeInvalidData,
			"a chart needs more than one entry, got %d", n)
	}

	if s.snap != nil {
		s.mu.Unlock()
		return LayoutReady, nil
	}

	snap := s.compute()
	s.snap = snap
	animate := s.animate
	s.mu.Unlock()

	s.logger.Debug("layout computed",
		"points", len(snap.Points),
		"scale_min", snap.Scale.Min,
		"scale_max", snap.Scale.Max,
		"frame_height", snap.Frame.Height())

	// Fire-and-forget handoff: the engine never waits on the animator.
	// The animator mutates a private copy; each redraw it requests first
	// publishes the copy's positions into the cached snapshot under the
	// session lock. A frame from a superseded run finds a different
	// snapshot installed and is discarded.
	if animate && s.animator != nil {
		work := append([]DataPoint(nil), snap.Points...)
		publish := func() {
			s.mu.Lock()
			if s.snap == snap {
				for i := range work {
					s.snap.Points[i].Y = work[i].Y
				}
			}
			s.mu.Unlock()
			s.requestRedraw()
		}
		stop := s.animator.Start(snap.Frame.Bottom, work, publish)
		s.mu.Lock()
		s.stopAnim = stop
		s.mu.Unlock()
	} else {
		s.requestRedraw()
	}

	return LayoutComputed, nil
}

// compute runs the single layout pass. Caller holds s.mu.
func (s *Session) compute() *Snapshot {
	cfg := s.cfg
	_, lineHeight := s.measurer.Measure("0", cfg.FontSize)

	outer := Rect{Right: cfg.Width, Bottom: cfg.Height}.Inset(cfg.Padding)

	// The scale was resolved on assignment, so Y tick texts exist before
	// any frame does; that is what breaks the measurement cycle.
	xPad := xAxisPadding(cfg.Axes, lineHeight)
	yPad := yAxisPadding(cfg.Axes, s.yTexts, s.measurer, cfg.FontSize, lineHeight)
	frame := outer.Inset(NegotiatePaddings(xPad, yPad))

	mode := XModeAnchored
	switch {
	case !cfg.Axes.ShowX():
		mode = XModeHidden
	case cfg.PackedX:
		mode = XModePacked
	}

	xLabels := PlaceXLabels(s.xTexts, frame, mode, s.measurer, cfg.FontSize, lineHeight)
	yLabels := PlaceYLabels(s.scale, cfg.YSteps, frame, s.measurer, cfg.FontSize, lineHeight, cfg.Format)

	points := make([]DataPoint, len(s.data))
	copy(points, s.data)
	Project(points, xLabels, s.scale, frame)

	return &Snapshot{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Frame:    frame,
		Scale:    s.scale,
		Axes:     cfg.Axes,
		FontSize: cfg.FontSize,
		Points:   points,
		XLabels:  xLabels,
		YLabels:  yLabels,
	}
}

// Snapshot returns a deep copy of the cached layout, and whether one
// exists. Render sinks use this instead of Draw when they want the whole
// layout at once.
func (s *Session) Snapshot() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		return Snapshot{}, false
	}
	return s.snap.Clone(), true
}

func (s *Session) requestRedraw() {
	if s.redraw != nil {
		s.redraw()
	}
}
