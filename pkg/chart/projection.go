package chart

// Project assigns each data point its screen coordinates.
//
// Horizontally, a point sits on the same column grid as its category
// label: it reuses the X label position at the same index. Vertically,
// the value is linearly interpolated into the frame:
//
//	screenY = frameBottom - frameHeight * (value - min) / (max - min)
//
// so a value equal to Scale.Min lands on the frame bottom and a value
// equal to Scale.Max lands on the frame top. A degenerate scale
// (Max == Min) places every point at the frame's vertical center rather
// than propagating a division by zero.
func Project(points []DataPoint, xLabels []Label, scale Scale, frame Rect) {
	degenerate := scale.IsDegenerate()
	span := scale.Span()

	for i := range points {
		points[i].X = xLabels[i].X
		if degenerate {
			points[i].Y = frame.CenterY()
			continue
		}
		points[i].Y = frame.Bottom - frame.Height()*(points[i].Value-scale.Min)/span
	}
}
