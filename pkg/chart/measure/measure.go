// Package measure provides text measurement for chart label layout.
//
// The layout engine never shapes or draws text itself; it only needs the
// pixel width and line height of a label at a given font size. Two
// implementations are provided:
//
//   - FontMeasurer: real metrics from a truetype face (the embedded Go
//     Regular font by default, matching what the PNG sink draws with).
//   - RatioMeasurer: cheap character-ratio estimates for headless layout
//     and tests, where exact glyph metrics do not matter.
package measure

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/chartkit/chartkit/pkg/errors"
)

// Measurer reports the rendered size of a label string at a font size.
type Measurer interface {
	// Measure returns the width of text and the line height, in pixels,
	// when rendered at the given font size.
	Measure(text string, size float64) (width, height float64)
}

// =============================================================================
// RatioMeasurer
// =============================================================================

// Character-ratio constants for estimating label sizes without a font.
const (
	ratioCharWidth  = 0.55
	ratioLineHeight = 1.2
)

// RatioMeasurer estimates text sizes from fixed per-character ratios.
// Good enough for layout when no font face is available.
type RatioMeasurer struct {
	// CharWidth is the average glyph width as a fraction of the font size.
	CharWidth float64
	// LineHeight is the line height as a fraction of the font size.
	LineHeight float64
}

// NewRatioMeasurer creates a ratio measurer with default ratios.
func NewRatioMeasurer() *RatioMeasurer {
	return &RatioMeasurer{CharWidth: ratioCharWidth, LineHeight: ratioLineHeight}
}

// Measure returns len(text) * size * CharWidth and size * LineHeight.
func (m *RatioMeasurer) Measure(text string, size float64) (float64, float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n) * size * m.CharWidth, size * m.LineHeight
}

// =============================================================================
// FontMeasurer
// =============================================================================

// FontMeasurer measures text with real truetype font metrics.
// Faces are created lazily per font size and cached.
type FontMeasurer struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFontMeasurer creates a measurer backed by the embedded Go Regular font.
func NewFontMeasurer() (*FontMeasurer, error) {
	return NewFontMeasurerFromTTF(goregular.TTF)
}

// NewFontMeasurerFromTTF creates a measurer from raw TTF data.
func NewFontMeasurerFromTTF(ttf []byte) (*FontMeasurer, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font")
	}
	return &FontMeasurer{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Measure returns the advance width of text and the face line height.
func (m *FontMeasurer) Measure(text string, size float64) (float64, float64) {
	face := m.face(size)
	width := font.MeasureString(face, text)
	metrics := face.Metrics()
	return fixedToFloat(width), fixedToFloat(metrics.Height)
}

// Face returns the cached face for a font size, for callers that draw
// with the same metrics the layout was measured with.
func (m *FontMeasurer) Face(size float64) font.Face {
	return m.face(size)
}

func (m *FontMeasurer) face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(m.font, &truetype.Options{Size: size})
	m.faces[size] = f
	return f
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// Default returns the best available measurer: font metrics when the
// embedded font parses (it always should), ratio estimates otherwise.
func Default() Measurer {
	if m, err := NewFontMeasurer(); err == nil {
		return m
	}
	return NewRatioMeasurer()
}
