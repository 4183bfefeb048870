package render

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/chart/measure"
	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// PNG Sink
// =============================================================================

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style Style
	title string
	scale float64
}

// WithPNGStyle selects the data mark style. Defaults to LineStyle.
func WithPNGStyle(s Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// WithPNGTitle draws a centered title above the frame.
func WithPNGTitle(t string) PNGOption { return func(r *pngRenderer) { r.title = t } }

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// RenderPNG rasterizes a layout snapshot to PNG. Text is drawn with the
// same embedded face the default measurer uses, so rendered labels match
// the widths the layout reserved for them.
func RenderPNG(snap chart.Snapshot, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: LineStyle{}, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 2.0
	}

	fm, err := measure.NewFontMeasurer()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(int(snap.Width*r.scale), int(snap.Height*r.scale))
	dc.Scale(r.scale, r.scale)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	drawData(dc, r.style, snap.Frame, snap.Points)

	dc.SetFontFace(fm.Face(snap.FontSize))
	dc.SetRGB255(0x4a, 0x55, 0x68)
	if snap.Axes.ShowX() {
		for _, l := range snap.XLabels {
			dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
		}
	}
	if snap.Axes.ShowY() {
		for _, l := range snap.YLabels {
			dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
		}
	}

	if r.title != "" {
		dc.SetFontFace(fm.Face(snap.FontSize * 1.3))
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(r.title, snap.Width/2, snap.FontSize*1.5, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// drawData rasterizes the data marks directly instead of going through
// the SVG text form.
func drawData(dc *gg.Context, style Style, frame chart.Rect, points []chart.DataPoint) {
	switch s := style.(type) {
	case BarStyle:
		frac := s.WidthFraction
		if frac <= 0 || frac > 1 {
			frac = 0.6
		}
		dc.SetRGB255(0x4a, 0x7d, 0xbd)
		if len(points) > 0 {
			barW := frame.Width() / float64(len(points)) * frac
			for _, p := range points {
				h := frame.Bottom - p.Y
				if h < 0 {
					h = 0
				}
				dc.DrawRectangle(p.X-barW/2, p.Y, barW, h)
			}
		}
		dc.Fill()
	default:
		dc.SetRGB255(0x2d, 0x37, 0x48)
		dc.SetLineWidth(2)
		for i, p := range points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.Stroke()
		for _, p := range points {
			dc.DrawCircle(p.X, p.Y, 3)
		}
		dc.Fill()
	}
}
