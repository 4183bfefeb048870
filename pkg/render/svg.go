package render

import (
	"bytes"
	"fmt"

	"github.com/chartkit/chartkit/pkg/chart"
)

// =============================================================================
// SVG Sink
// =============================================================================

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      Style
	title      string
	background string
	grid       bool
}

// WithStyle selects the data mark style. Defaults to LineStyle.
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle draws a centered title above the frame.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithBackground fills the surface with the given color before drawing.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithGrid draws a horizontal gridline at every Y tick.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// RenderSVG renders a layout snapshot as an SVG document. It does not
// modify the snapshot and is safe to call concurrently.
func RenderSVG(snap chart.Snapshot, opts ...SVGOption) []byte {
	r := svgRenderer{style: LineStyle{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		snap.Width, snap.Height, snap.Width, snap.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			snap.Width, snap.Height, r.background)
	}

	if r.grid {
		renderGrid(&buf, snap)
	}

	r.style.RenderData(&buf, snap.Frame, snap.Points)

	if snap.Axes.ShowX() {
		for _, l := range snap.XLabels {
			renderLabel(&buf, l, snap.FontSize)
		}
	}
	if snap.Axes.ShowY() {
		for _, l := range snap.YLabels {
			renderLabel(&buf, l, snap.FontSize)
		}
	}

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" font-weight="bold" font-family="sans-serif">%s</text>`+"\n",
			snap.Width/2, snap.FontSize*1.5, snap.FontSize*1.3, escapeText(r.title))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderLabel emits one tick label. Label coordinates are the text
// center, so the baseline shifts down by roughly a third of the font
// size to center the glyphs vertically.
func renderLabel(buf *bytes.Buffer, l chart.Label, fontSize float64) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" font-family="sans-serif" fill="#4a5568">%s</text>`+"\n",
		l.X, l.Y+fontSize*0.35, fontSize, escapeText(l.Text))
}

func renderGrid(buf *bytes.Buffer, snap chart.Snapshot) {
	for _, l := range snap.YLabels {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e2e8f0" stroke-width="1"/>`+"\n",
			snap.Frame.Left, l.Y, snap.Frame.Right, l.Y)
	}
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
