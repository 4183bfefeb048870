// Package series defines the chart input data model and its file codecs.
//
// A Series is the user-facing input: a titled sequence of labeled values
// with no layout state. JSON series files and TOML manifests both decode
// into it; the layout engine consumes it through Values().
package series

import (
	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// Types
// =============================================================================

// Point is one labeled input value.
type Point struct {
	Label string  `json:"label" bson:"label" toml:"label"`
	Value float64 `json:"value" bson:"value" toml:"value"`
}

// Series is a titled sequence of input points.
type Series struct {
	Title  string  `json:"title,omitempty" bson:"title,omitempty" toml:"title"`
	Points []Point `json:"points" bson:"points" toml:"points"`
}

// Values converts the series to layout engine data points.
func (s Series) Values() []chart.DataPoint {
	out := make([]chart.DataPoint, len(s.Points))
	for i, p := range s.Points {
		out[i] = chart.DataPoint{Label: p.Label, Value: p.Value}
	}
	return out
}

// Validate checks the series for layout-breaking inputs: it needs at
// least two points, every label must be a well-formed unique category,
// and every value must be finite.
func (s Series) Validate() error {
	if len(s.Points) < 2 {
		return errors.New(errors.ErrCodeInvalidData,
			"a chart needs more than one entry, got %d", len(s.Points))
	}

	seen := make(map[string]struct{}, len(s.Points))
	for _, p := range s.Points {
		if err := errors.ValidateCategory(p.Label); err != nil {
			return err
		}
		if _, dup := seen[p.Label]; dup {
			return errors.New(errors.ErrCodeInvalidData, "duplicate label %q", p.Label)
		}
		seen[p.Label] = struct{}{}

		if err := errors.ValidateValue(p.Label, p.Value); err != nil {
			return err
		}
	}
	return nil
}
