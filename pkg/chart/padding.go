package chart

import "github.com/chartkit/chartkit/pkg/chart/measure"

// NegotiatePaddings reconciles the X and Y axes' independent padding
// requirements into one box. Each side takes the larger of the two
// demands; demands are never summed, since reservations on the same side
// overlap in purpose and must not double-count.
func NegotiatePaddings(x, y Paddings) Paddings {
	return x.Max(y)
}

// xAxisPadding is the space the X axis labels demand: one label-line
// height at the bottom, nothing elsewhere. Zero when the axis is hidden.
func xAxisPadding(axes Axis, lineHeight float64) Paddings {
	if !axes.ShowX() {
		return Paddings{}
	}
	return Paddings{Bottom: lineHeight}
}

// yAxisPadding is the space the Y axis labels demand: the width of the
// widest formatted tick label on the left, and half a line height at the
// top and bottom so the outermost ticks are not clipped. Zero when the
// axis is hidden.
//
// This is where the layout's circular dependency is broken: tick texts
// come from the already-resolved scale, so measurement can run before the
// inner frame exists.
func yAxisPadding(axes Axis, tickTexts []string, m measure.Measurer, fontSize, lineHeight float64) Paddings {
	if !axes.ShowY() {
		return Paddings{}
	}

	var widest float64
	for _, text := range tickTexts {
		if w, _ := m.Measure(text, fontSize); w > widest {
			widest = w
		}
	}

	return Paddings{
		Left:   widest,
		Top:    lineHeight / 2,
		Bottom: lineHeight / 2,
	}
}

// yTickTexts formats the stepCount+1 tick values from Min to Max inclusive.
func yTickTexts(scale Scale, stepCount int, format Formatter) []string {
	texts := make([]string, stepCount+1)
	step := scale.Span() / float64(stepCount)
	for i := 0; i <= stepCount; i++ {
		texts[i] = format(scale.Min + step*float64(i))
	}
	return texts
}
