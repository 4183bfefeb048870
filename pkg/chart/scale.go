package chart

// ResolveScale computes the numeric range a chart must display.
//
// Min is the smallest point value, or 0 when anchorZero is set (bar-chart
// style baselines). Max is always the largest point value. A data set
// whose values are all equal yields a degenerate scale (Min == Max) unless
// anchorZero moves the minimum; placement and projection handle that case
// explicitly instead of dividing by zero.
func ResolveScale(points []DataPoint, anchorZero bool) Scale {
	if len(points) == 0 {
		return Scale{}
	}

	min, max := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}

	if anchorZero {
		min = 0
	}
	return Scale{Min: min, Max: max}
}
