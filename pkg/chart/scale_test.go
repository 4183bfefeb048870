package chart

import "testing"

func TestResolveScale(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		anchorZero bool
		want       Scale
	}{
		{
			name:   "plain range",
			values: []float64{4, 9, 2, 7},
			want:   Scale{Min: 2, Max: 9},
		},
		{
			name:       "anchored at zero",
			values:     []float64{4, 9, 2, 7},
			anchorZero: true,
			want:       Scale{Min: 0, Max: 9},
		},
		{
			name:   "negative values",
			values: []float64{-3, -8, -1},
			want:   Scale{Min: -8, Max: -1},
		},
		{
			name:   "all equal",
			values: []float64{5, 5, 5},
			want:   Scale{Min: 5, Max: 5},
		},
		{
			name:       "all equal anchored",
			values:     []float64{5, 5, 5},
			anchorZero: true,
			want:       Scale{Min: 0, Max: 5},
		},
		{
			name:   "empty",
			values: nil,
			want:   Scale{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]DataPoint, len(tt.values))
			for i, v := range tt.values {
				points[i] = DataPoint{Label: "p", Value: v}
			}
			got := ResolveScale(points, tt.anchorZero)
			if got != tt.want {
				t.Errorf("ResolveScale() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScaleInvariant(t *testing.T) {
	// For any non-negative data set, Max >= Min must hold with and
	// without the zero anchor.
	sets := [][]float64{
		{1, 2}, {0, 0}, {10, 3, 8}, {0.5, 0.1, 0.9},
	}
	for _, values := range sets {
		points := make([]DataPoint, len(values))
		for i, v := range values {
			points[i] = DataPoint{Value: v}
		}
		for _, anchor := range []bool{false, true} {
			s := ResolveScale(points, anchor)
			if s.Max < s.Min {
				t.Errorf("ResolveScale(%v, %v): Max %v < Min %v", values, anchor, s.Max, s.Min)
			}
			if anchor && s.Min != 0 {
				t.Errorf("ResolveScale(%v, true): Min = %v, want 0", values, s.Min)
			}
		}
	}
}

func TestScaleIsDegenerate(t *testing.T) {
	if !(Scale{Min: 5, Max: 5}).IsDegenerate() {
		t.Error("equal bounds should be degenerate")
	}
	if (Scale{Min: 0, Max: 5}).IsDegenerate() {
		t.Error("distinct bounds should not be degenerate")
	}
}
