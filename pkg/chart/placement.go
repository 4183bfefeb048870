package chart

import "github.com/chartkit/chartkit/pkg/chart/measure"

// XMode selects how X axis labels are distributed across the inner frame.
type XMode int

const (
	// XModeAnchored aligns the first and last label's visible text edges
	// to the frame edges and interpolates the rest by index. Default for
	// a visible X axis.
	XModeAnchored XMode = iota
	// XModePacked partitions the frame into equal-width cells and centers
	// one label per cell. Used for purely categorical axes.
	XModePacked
	// XModeHidden spans the full frame width with no width compensation.
	// Positions are still computed because data projection reuses them.
	XModeHidden
)

// PlaceXLabels computes the screen position of every X axis label.
// Label X is the text center; label Y sits one label-line height below
// the inner frame's bottom edge.
func PlaceXLabels(texts []string, frame Rect, mode XMode, m measure.Measurer, fontSize, lineHeight float64) []Label {
	labels := make([]Label, len(texts))
	y := frame.Bottom + lineHeight
	n := len(texts)

	switch mode {
	case XModePacked:
		cell := frame.Width() / float64(n)
		for i, text := range texts {
			labels[i] = Label{
				Text: text,
				X:    frame.Left + cell*(float64(i)+0.5),
				Y:    y,
			}
		}

	case XModeHidden:
		for i, text := range texts {
			labels[i] = Label{
				Text: text,
				X:    interpolate(frame.Left, frame.Right, i, n),
				Y:    y,
			}
		}

	default: // XModeAnchored
		firstW, _ := m.Measure(texts[0], fontSize)
		lastW, _ := m.Measure(texts[n-1], fontSize)
		left := frame.Left + firstW/2
		right := frame.Right - lastW/2
		for i, text := range texts {
			labels[i] = Label{
				Text: text,
				X:    interpolate(left, right, i, n),
				Y:    y,
			}
		}
	}

	return labels
}

// interpolate places index i of n linearly between left and right.
// A single label sits at the left anchor; the interpolation step is
// undefined for n == 1.
func interpolate(left, right float64, i, n int) float64 {
	if n <= 1 {
		return left
	}
	return left + (right-left)*float64(i)/float64(n-1)
}

// PlaceYLabels computes the stepCount+1 Y axis tick labels from Min to
// Max inclusive, evenly spaced by value. The bottommost label sits half a
// line height below the frame bottom and each successive label climbs by
// frameHeight/stepCount, so screen position and value increase together
// from bottom to top. Label X centers the text so its right edge touches
// the frame's left edge.
func PlaceYLabels(scale Scale, stepCount int, frame Rect, m measure.Measurer, fontSize, lineHeight float64, format Formatter) []Label {
	texts := yTickTexts(scale, stepCount, format)
	labels := make([]Label, len(texts))

	screenStep := frame.Height() / float64(stepCount)
	baseY := frame.Bottom + lineHeight/2

	for i, text := range texts {
		w, _ := m.Measure(text, fontSize)
		labels[i] = Label{
			Text: text,
			X:    frame.Left - w/2,
			Y:    baseY - screenStep*float64(i),
		}
	}
	return labels
}
