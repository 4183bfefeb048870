// Package anim animates chart data points from a baseline to their
// projected positions.
//
// The Interpolator satisfies the chart.Animator handoff: it captures each
// point's target Y, resets every point to the baseline, and drives the
// points toward their targets on a ticker goroutine, requesting a redraw
// after every frame. The final frame always lands exactly on the targets.
package anim

import (
	"math"
	"sync"
	"time"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/observability"
)

// Default animation parameters.
const (
	// DefaultDuration is the default animation run length.
	DefaultDuration = 400 * time.Millisecond

	// DefaultFPS is the default frame rate.
	DefaultFPS = 60
)

// EaseFunc maps linear progress in [0, 1] to eased progress in [0, 1].
type EaseFunc func(t float64) float64

// EaseOutCubic decelerates toward the end of the run.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseLinear applies no easing.
func EaseLinear(t float64) float64 { return t }

// Interpolator animates point Y positions from a shared baseline toward
// their projected targets. The zero value is usable; fields left zero
// take their defaults.
type Interpolator struct {
	// Duration is the run length. Defaults to DefaultDuration.
	Duration time.Duration

	// FPS is the frame rate. Defaults to DefaultFPS.
	FPS int

	// Ease shapes the progress curve. Defaults to EaseOutCubic.
	Ease EaseFunc
}

// Start begins an animation run and returns a stop function.
//
// The points slice is private to the run and mutated on the ticker
// goroutine; positions reach the host only through the redraw callback,
// which the session uses to publish the frame before repainting. Stop
// is idempotent and safe to call after the run has finished on its own.
func (a *Interpolator) Start(baseline float64, points []chart.DataPoint, redraw func()) func() {
	duration := a.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	fps := a.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	ease := a.Ease
	if ease == nil {
		ease = EaseOutCubic
	}

	targets := make([]float64, len(points))
	for i := range points {
		targets[i] = points[i].Y
		points[i].Y = baseline
	}
	if redraw != nil {
		redraw()
	}

	observability.Animation().OnAnimationStart(len(points))

	done := make(chan struct{})
	var once sync.Once
	stop := func() { once.Do(func() { close(done) }) }

	go func() {
		start := time.Now()
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				t := math.Min(float64(now.Sub(start))/float64(duration), 1)
				p := ease(t)
				for i := range points {
					points[i].Y = baseline + (targets[i]-baseline)*p
				}
				observability.Animation().OnAnimationFrame(p)
				if redraw != nil {
					redraw()
				}
				if t >= 1 {
					observability.Animation().OnAnimationComplete(time.Since(start))
					stop()
					return
				}
			}
		}
	}()

	return stop
}
