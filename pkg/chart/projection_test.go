package chart

import "testing"

func TestProjectRoundTrip(t *testing.T) {
	// A value at Scale.Min projects to the frame bottom, a value at
	// Scale.Max to the frame top.
	frame := testFrame()
	scale := Scale{Min: 10, Max: 50}
	points := []DataPoint{
		{Label: "lo", Value: 10},
		{Label: "mid", Value: 30},
		{Label: "hi", Value: 50},
	}
	xLabels := []Label{{X: 15}, {X: 150}, {X: 285}}

	Project(points, xLabels, scale, frame)

	if !approx(points[0].Y, frame.Bottom) {
		t.Errorf("min value Y = %v, want frame bottom %v", points[0].Y, frame.Bottom)
	}
	if !approx(points[1].Y, 100) {
		t.Errorf("mid value Y = %v, want 100", points[1].Y)
	}
	if !approx(points[2].Y, frame.Top) {
		t.Errorf("max value Y = %v, want frame top %v", points[2].Y, frame.Top)
	}
}

func TestProjectReusesXLabelGrid(t *testing.T) {
	frame := testFrame()
	points := []DataPoint{{Value: 1}, {Value: 2}, {Value: 3}}
	xLabels := []Label{{X: 10}, {X: 160}, {X: 290}}

	Project(points, xLabels, Scale{Min: 1, Max: 3}, frame)

	for i := range points {
		if points[i].X != xLabels[i].X {
			t.Errorf("point %d X = %v, want label X %v", i, points[i].X, xLabels[i].X)
		}
	}
}

func TestProjectDegenerateScale(t *testing.T) {
	// All-equal values give a zero-width scale; points land on the
	// frame's vertical center instead of dividing by zero.
	frame := testFrame()
	points := []DataPoint{{Value: 7}, {Value: 7}}
	xLabels := []Label{{X: 15}, {X: 285}}

	Project(points, xLabels, Scale{Min: 7, Max: 7}, frame)

	for i := range points {
		if !approx(points[i].Y, frame.CenterY()) {
			t.Errorf("point %d Y = %v, want frame center %v", i, points[i].Y, frame.CenterY())
		}
	}
}
