package chart

import "github.com/chartkit/chartkit/pkg/errors"

// Canvas is the drawing collaborator the draw step emits to. The draw
// step never issues paint commands itself; it only forwards the cached
// layout.
type Canvas interface {
	// DrawXLabel paints one X axis tick label. Coordinates are the text
	// center.
	DrawXLabel(l Label, fontSize float64)

	// DrawYLabel paints one Y axis tick label. Coordinates are the text
	// center.
	DrawYLabel(l Label, fontSize float64)

	// DrawData paints the data points inside the inner frame.
	DrawData(frame Rect, points []DataPoint)
}

// Draw emits the cached layout to the canvas: the enabled axes' label
// sets, then the inner frame and data points. It performs no computation
// and no mutation. Drawing before the first successful layout pass fails
// with ErrCodeNotReady; the host must honor the LayoutComputed signal and
// defer its first draw until the next redraw request.
func (s *Session) Draw(c Canvas) error {
	s.mu.Lock()
	if s.snap == nil {
		s.mu.Unlock()
		return errors.New(errors.ErrCodeNotReady, "layout has not been processed")
	}
	snap := s.snap.Clone()
	s.mu.Unlock()

	if snap.Axes.ShowX() {
		for _, l := range snap.XLabels {
			c.DrawXLabel(l, snap.FontSize)
		}
	}
	if snap.Axes.ShowY() {
		for _, l := range snap.YLabels {
			c.DrawYLabel(l, snap.FontSize)
		}
	}
	c.DrawData(snap.Frame, snap.Points)
	return nil
}
