package chart

import (
	"math"
	"testing"
)

const placeEps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < placeEps }

func TestPlaceXLabelsAnchored(t *testing.T) {
	// Inner frame width 300, every label measures 30px: the first
	// label's center is half its width in from the left edge, the last
	// half its width in from the right edge, and the middle label sits
	// at the midpoint of those anchors.
	m := fixedMeasurer{w: 30, h: 20}
	labels := PlaceXLabels([]string{"A", "B", "C"}, testFrame(), XModeAnchored, m, 12, 20)

	wantX := []float64{15, 150, 285}
	for i, want := range wantX {
		if !approx(labels[i].X, want) {
			t.Errorf("label %q X = %v, want %v", labels[i].Text, labels[i].X, want)
		}
	}
}

func TestPlaceXLabelsPacked(t *testing.T) {
	// 4 labels over a 400px frame: cell width 100, centers at 50, 150,
	// 250, 350.
	frame := Rect{Left: 0, Top: 0, Right: 400, Bottom: 200}
	m := fixedMeasurer{w: 30, h: 20}
	labels := PlaceXLabels([]string{"Q1", "Q2", "Q3", "Q4"}, frame, XModePacked, m, 12, 20)

	wantX := []float64{50, 150, 250, 350}
	for i, want := range wantX {
		if !approx(labels[i].X, want) {
			t.Errorf("label %q X = %v, want %v", labels[i].Text, labels[i].X, want)
		}
	}
}

func TestPlaceXLabelsHidden(t *testing.T) {
	// Hidden mode spans the full frame with no width compensation.
	m := fixedMeasurer{w: 30, h: 20}
	labels := PlaceXLabels([]string{"A", "B", "C"}, testFrame(), XModeHidden, m, 12, 20)

	wantX := []float64{0, 150, 300}
	for i, want := range wantX {
		if !approx(labels[i].X, want) {
			t.Errorf("label %q X = %v, want %v", labels[i].Text, labels[i].X, want)
		}
	}
}

func TestPlaceXLabelsSingleLabel(t *testing.T) {
	// One label has no interpolation step; it sits at the left anchor.
	m := fixedMeasurer{w: 30, h: 20}

	anchored := PlaceXLabels([]string{"A"}, testFrame(), XModeAnchored, m, 12, 20)
	if !approx(anchored[0].X, 15) {
		t.Errorf("anchored single label X = %v, want 15", anchored[0].X)
	}

	hidden := PlaceXLabels([]string{"A"}, testFrame(), XModeHidden, m, 12, 20)
	if !approx(hidden[0].X, 0) {
		t.Errorf("hidden single label X = %v, want 0", hidden[0].X)
	}
}

func TestPlaceXLabelsVerticalPosition(t *testing.T) {
	// All X labels sit one label-line height below the frame bottom.
	m := fixedMeasurer{w: 30, h: 20}
	labels := PlaceXLabels([]string{"A", "B"}, testFrame(), XModeAnchored, m, 12, 20)

	for _, l := range labels {
		if !approx(l.Y, 220) {
			t.Errorf("label %q Y = %v, want 220", l.Text, l.Y)
		}
	}
}

func TestPlaceYLabelsCount(t *testing.T) {
	m := fixedMeasurer{w: 24, h: 16}
	for _, steps := range []int{1, 3, 5} {
		labels := PlaceYLabels(Scale{Min: 0, Max: 100}, steps, testFrame(), m, 12, 16, DefaultFormatter)
		if len(labels) != steps+1 {
			t.Errorf("steps=%d: len = %d, want %d", steps, len(labels), steps+1)
		}
	}
}

func TestPlaceYLabelsPositions(t *testing.T) {
	// Frame height 200, 4 steps: screen step 50. The bottommost label
	// sits at frame bottom plus half a line height and each successive
	// label climbs by one screen step.
	m := fixedMeasurer{w: 24, h: 16}
	labels := PlaceYLabels(Scale{Min: 0, Max: 100}, 4, testFrame(), m, 12, 16, DefaultFormatter)

	wantY := []float64{208, 158, 108, 58, 8}
	wantText := []string{"0", "25", "50", "75", "100"}
	for i := range labels {
		if labels[i].Text != wantText[i] {
			t.Errorf("label %d text = %q, want %q", i, labels[i].Text, wantText[i])
		}
		if !approx(labels[i].Y, wantY[i]) {
			t.Errorf("label %q Y = %v, want %v", labels[i].Text, labels[i].Y, wantY[i])
		}
	}
}

func TestPlaceYLabelsHorizontalPosition(t *testing.T) {
	// Label text centers half its width left of the frame edge, so the
	// text's right edge touches the frame.
	m := fixedMeasurer{w: 24, h: 16}
	frame := Rect{Left: 40, Top: 0, Right: 300, Bottom: 200}
	labels := PlaceYLabels(Scale{Min: 0, Max: 100}, 3, frame, m, 12, 16, DefaultFormatter)

	for _, l := range labels {
		if !approx(l.X, 28) { // 40 - 24/2
			t.Errorf("label %q X = %v, want 28", l.Text, l.X)
		}
	}
}
