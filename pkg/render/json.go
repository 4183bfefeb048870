package render

import (
	"encoding/json"
	"os"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// JSON Layout Sink
// =============================================================================

// MarshalLayout exports a layout snapshot as a pretty-printed JSON
// document. This is the data interchange format for computed layouts,
// enabling cached re-rendering without another layout pass.
func MarshalLayout(snap chart.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}

// UnmarshalLayout decodes a JSON layout document and checks it for the
// structural invariants a snapshot produced by a layout pass carries.
func UnmarshalLayout(data []byte) (chart.Snapshot, error) {
	var snap chart.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return chart.Snapshot{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "invalid layout JSON")
	}
	if err := validateLayout(snap); err != nil {
		return chart.Snapshot{}, err
	}
	return snap, nil
}

// WriteLayoutFile writes a snapshot as a JSON layout file.
func WriteLayoutFile(path string, snap chart.Snapshot) error {
	data, err := MarshalLayout(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write layout file %q", path)
	}
	return nil
}

// ReadLayoutFile loads and validates a JSON layout file.
func ReadLayoutFile(path string) (chart.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chart.Snapshot{}, errors.Wrap(errors.ErrCodeNotFound, err, "read layout file %q", path)
	}
	return UnmarshalLayout(data)
}

func validateLayout(snap chart.Snapshot) error {
	if snap.Width <= 0 || snap.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has non-positive surface %gx%g", snap.Width, snap.Height)
	}
	if snap.Frame.Width() < 0 || snap.Frame.Height() < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout frame is inverted")
	}
	if snap.Scale.Max < snap.Scale.Min {
		return errors.New(errors.ErrCodeInvalidLayout, "layout scale max %g below min %g", snap.Scale.Max, snap.Scale.Min)
	}
	if len(snap.Points) < 2 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has %d points, need at least 2", len(snap.Points))
	}
	return nil
}
