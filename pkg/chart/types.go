package chart

import (
	"fmt"

	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// Axis Visibility
// =============================================================================

// Axis selects which axis label sets are measured, placed, and drawn.
type Axis int

const (
	// AxisNone hides both axes.
	AxisNone Axis = iota
	// AxisX shows only the X axis labels.
	AxisX
	// AxisY shows only the Y axis labels.
	AxisY
	// AxisXY shows both axes.
	AxisXY
)

// ShowX reports whether X axis labels are visible.
func (a Axis) ShowX() bool { return a == AxisX || a == AxisXY }

// ShowY reports whether Y axis labels are visible.
func (a Axis) ShowY() bool { return a == AxisY || a == AxisXY }

// String returns the lowercase name of the axis selection.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisXY:
		return "xy"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts a string ("none", "x", "y", "xy") to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "none":
		return AxisNone, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "xy", "":
		return AxisXY, nil
	default:
		return AxisNone, errors.New(errors.ErrCodeInvalidConfig, "invalid axes: %q (must be one of: none, x, y, xy)", s)
	}
}

// =============================================================================
// Scale
// =============================================================================

// Scale is the [min, max] numeric range the Y axis and data projection
// are normalized against. Invariant: Max >= Min.
type Scale struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// Span returns Max - Min.
func (s Scale) Span() float64 { return s.Max - s.Min }

// IsDegenerate reports whether the scale has zero width (all data values
// equal). Downstream placement must not divide by the span in this case.
func (s Scale) IsDegenerate() bool { return s.Max == s.Min }

// =============================================================================
// Paddings
// =============================================================================

// Paddings is a four-sided inset box, in pixels. All values are non-negative.
type Paddings struct {
	Left   float64 `json:"left" bson:"left"`
	Top    float64 `json:"top" bson:"top"`
	Right  float64 `json:"right" bson:"right"`
	Bottom float64 `json:"bottom" bson:"bottom"`
}

// Max returns the element-wise maximum of p and o. This is the padding
// negotiation rule: X and Y axis reservations on the same side overlap in
// purpose and must not be summed.
func (p Paddings) Max(o Paddings) Paddings {
	return Paddings{
		Left:   max(p.Left, o.Left),
		Top:    max(p.Top, o.Top),
		Right:  max(p.Right, o.Right),
		Bottom: max(p.Bottom, o.Bottom),
	}
}

// =============================================================================
// Rect
// =============================================================================

// Rect is a rectangle in screen coordinates: Y grows downward, so
// Top < Bottom for a non-empty rectangle.
type Rect struct {
	Left   float64 `json:"left" bson:"left"`
	Top    float64 `json:"top" bson:"top"`
	Right  float64 `json:"right" bson:"right"`
	Bottom float64 `json:"bottom" bson:"bottom"`
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Inset returns the rectangle shrunk by the given paddings.
func (r Rect) Inset(p Paddings) Rect {
	return Rect{
		Left:   r.Left + p.Left,
		Top:    r.Top + p.Top,
		Right:  r.Right - p.Right,
		Bottom: r.Bottom - p.Bottom,
	}
}

// =============================================================================
// Data Points and Labels
// =============================================================================

// DataPoint is one labeled value with its projected screen position.
// X and Y are computed by the layout pass; they are zero until then.
type DataPoint struct {
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}

// Label is one axis tick label. X and Y are the screen coordinates of the
// text center.
type Label struct {
	Text string  `json:"text" bson:"text"`
	X    float64 `json:"x" bson:"x"`
	Y    float64 `json:"y" bson:"y"`
}

// Formatter converts a Y tick value to its label text.
type Formatter func(v float64) string

// DefaultFormatter formats tick values as integers.
func DefaultFormatter(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// =============================================================================
// Snapshot
// =============================================================================

// Snapshot is the cached result of one layout pass: everything the draw
// step and the render sinks need, and nothing else. A snapshot is replaced
// wholesale when a new data set is supplied, never patched.
type Snapshot struct {
	// Width and Height are the full drawing surface size.
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Frame is the inner frame: surface minus outer padding minus
	// negotiated axis-label paddings.
	Frame Rect `json:"frame" bson:"frame"`

	Scale    Scale   `json:"scale" bson:"scale"`
	Axes     Axis    `json:"axes" bson:"axes"`
	FontSize float64 `json:"font_size" bson:"font_size"`

	Points  []DataPoint `json:"points" bson:"points"`
	XLabels []Label     `json:"x_labels" bson:"x_labels"`
	YLabels []Label     `json:"y_labels" bson:"y_labels"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Points = append([]DataPoint(nil), s.Points...)
	out.XLabels = append([]Label(nil), s.XLabels...)
	out.YLabels = append([]Label(nil), s.YLabels...)
	return out
}
