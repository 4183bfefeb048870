package pipeline

import (
	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/chart/measure"
	"github.com/chartkit/chartkit/pkg/errors"
	"github.com/chartkit/chartkit/pkg/series"
)

// =============================================================================
// Layout Computation
// =============================================================================

// ComputeLayout runs a complete layout pass for the series and returns
// the snapshot. This is the headless entry point: no host surface, no
// animation, no redraw loop, just the computed positions.
func ComputeLayout(s series.Series, opts Options) (chart.Snapshot, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Snapshot{}, err
	}
	if err := s.Validate(); err != nil {
		return chart.Snapshot{}, err
	}

	session := chart.NewSession(chart.Config{
		Width:      opts.Width,
		Height:     opts.Height,
		Axes:       opts.AxisValue(),
		FontSize:   opts.FontSize,
		YSteps:     opts.Steps,
		AnchorZero: opts.AnchorZero,
		PackedX:    opts.Packed,
		Logger:     opts.Logger,
	}, measure.Default(), nil, nil)

	session.SetData(s.Values())
	if _, err := session.Layout(); err != nil {
		return chart.Snapshot{}, err
	}

	snap, ok := session.Snapshot()
	if !ok {
		return chart.Snapshot{}, errors.New(errors.ErrCodeInternal, "layout pass produced no snapshot")
	}
	return snap, nil
}
