// Package chart implements the layout and scaling engine of a 2-D chart
// renderer.
//
// Given a set of labeled numeric data points and a drawing surface of
// known size, the engine computes where every axis label and every data
// point must be drawn in screen coordinates. The computation runs exactly
// once per data set and the result is cached for repeated redraws.
//
// # Layout pass
//
// A pass resolves the scale, negotiates axis paddings, places labels, and
// projects data values, in that order:
//
//	scale := ResolveScale(points, anchorZero)      // border values
//	// Y tick texts formatted from the scale break the measurement cycle:
//	// label width depends on formatted values, not on the frame.
//	frame := outer.Inset(NegotiatePaddings(xPad, yPad))
//	xLabels := PlaceXLabels(...)                   // packed / anchored / hidden
//	yLabels := PlaceYLabels(...)                   // stepCount+1 ticks, min to max
//	Project(points, xLabels, scale, frame)
//
// Session orchestrates this into a one-shot state machine; the free
// functions are exported for hosts that drive layout themselves.
//
// # Coordinates
//
// All positions are screen coordinates with Y growing downward. Rect
// therefore has Top < Bottom, and a value equal to Scale.Max projects to
// the frame's Top edge.
package chart
