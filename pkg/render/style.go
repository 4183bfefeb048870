// Package render turns layout snapshots into artifacts: SVG and PNG
// images and a JSON layout document for caching and re-rendering.
package render

import (
	"bytes"
	"fmt"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// Styles
// =============================================================================

// Style controls how the data region of a chart is drawn. Axis labels
// are style-independent; only the data marks vary.
type Style interface {
	// Name returns the style's registry name ("line", "bar").
	Name() string
	// RenderData writes the SVG for the data marks inside the frame.
	RenderData(buf *bytes.Buffer, frame chart.Rect, points []chart.DataPoint)
}

// ParseStyle resolves a style name to its implementation. An empty name
// selects the line style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "line", "":
		return LineStyle{}, nil
	case "bar":
		return BarStyle{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: line, bar)", name)
	}
}

// LineStyle draws a polyline through the points with a dot at each one.
type LineStyle struct {
	// Stroke is the line color. Defaults to a dark slate.
	Stroke string
}

func (s LineStyle) Name() string { return "line" }

func (s LineStyle) RenderData(buf *bytes.Buffer, frame chart.Rect, points []chart.DataPoint) {
	stroke := s.Stroke
	if stroke == "" {
		stroke = "#2d3748"
	}

	if len(points) > 1 {
		buf.WriteString(`  <polyline fill="none" stroke="` + stroke + `" stroke-width="2" points="`)
		for i, p := range points {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.1f,%.1f", p.X, p.Y)
		}
		buf.WriteString("\"/>\n")
	}

	for _, p := range points {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n", p.X, p.Y, stroke)
	}
}

// BarStyle draws a vertical bar from the frame bottom up to each point.
type BarStyle struct {
	// Fill is the bar color. Defaults to a steel blue.
	Fill string

	// WidthFraction is the bar width as a fraction of the per-point cell.
	// Defaults to 0.6.
	WidthFraction float64
}

func (s BarStyle) Name() string { return "bar" }

func (s BarStyle) RenderData(buf *bytes.Buffer, frame chart.Rect, points []chart.DataPoint) {
	if len(points) == 0 {
		return
	}

	fill := s.Fill
	if fill == "" {
		fill = "#4a7dbd"
	}
	frac := s.WidthFraction
	if frac <= 0 || frac > 1 {
		frac = 0.6
	}

	cell := frame.Width() / float64(len(points))
	barW := cell * frac

	for _, p := range points {
		h := frame.Bottom - p.Y
		if h < 0 {
			h = 0
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			p.X-barW/2, p.Y, barW, h, fill)
	}
}
