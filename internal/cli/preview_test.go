package cli

import (
	"strings"
	"testing"

	"github.com/chartkit/chartkit/pkg/chart"
)

func TestTermCanvasDrawData(t *testing.T) {
	c := newTermCanvas(40, 20, 400, 200)
	frame := chart.Rect{Left: 40, Top: 20, Right: 360, Bottom: 180}
	points := []chart.DataPoint{
		{Label: "a", X: 40, Y: 180},
		{Label: "b", X: 200, Y: 60},
		{Label: "c", X: 360, Y: 120},
	}

	c.DrawData(frame, points)

	var markers, lines, corners int
	for y := range c.runes {
		for x := range c.runes[y] {
			switch c.runes[y][x] {
			case '●':
				markers++
			case '·':
				lines++
			case '└':
				corners++
			}
		}
	}
	if markers != 3 {
		t.Errorf("point markers = %d, want 3", markers)
	}
	if lines == 0 {
		t.Error("canvas has no connecting line")
	}
	if corners != 1 {
		t.Errorf("frame corners = %d, want 1", corners)
	}
}

func TestTermCanvasLabels(t *testing.T) {
	c := newTermCanvas(40, 10, 400, 100)
	c.DrawXLabel(chart.Label{Text: "Jan", X: 200, Y: 90}, 12)
	c.DrawYLabel(chart.Label{Text: "50", X: 20, Y: 50}, 12)

	rows := make([]string, len(c.runes))
	for i, r := range c.runes {
		rows[i] = string(r)
	}
	out := strings.Join(rows, "\n")
	if !strings.Contains(out, "Jan") {
		t.Error("X label not rendered")
	}
	if !strings.Contains(out, "50") {
		t.Error("Y label not rendered")
	}
}

func TestTermCanvasClamping(t *testing.T) {
	c := newTermCanvas(10, 5, 100, 50)

	// Out-of-surface coordinates must clamp to the grid, not panic.
	c.DrawData(chart.Rect{Left: -50, Top: -50, Right: 500, Bottom: 500}, []chart.DataPoint{
		{Label: "a", X: -10, Y: -10},
		{Label: "b", X: 900, Y: 900},
	})

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 5 {
		t.Errorf("canvas rows = %d, want 5", len(lines))
	}
}

func TestTermCanvasLine(t *testing.T) {
	c := newTermCanvas(10, 10, 10, 10)
	c.line(0, 0, 9, 9)

	// A diagonal line touches every row.
	for y := 0; y < 10; y++ {
		if c.runes[y][y] != '·' {
			t.Errorf("cell (%d,%d) = %q, want line rune", y, y, c.runes[y][y])
		}
	}
}
