// Package pipeline provides the layout → render pipeline for chartkit.
//
// This package implements the complete series → layout → render flow
// that the CLI and HTTP server both use. Centralizing it keeps behavior
// consistent across entry points and puts caching in one place.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Resolve the scale, negotiate paddings, place labels, and
//     project data points into screen coordinates.
//  2. Render: Generate output in various formats (SVG, PNG, JSON).
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg"},
//	    Style:   "line",
//	}
//	result, err := runner.Execute(ctx, series, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartkit/chartkit/pkg/cache"
	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = 600.0

	// DefaultFontSize is the default axis label font size.
	DefaultFontSize = chart.DefaultFontSize

	// DefaultSteps is the default number of Y axis intervals.
	DefaultSteps = chart.DefaultYSteps

	// DefaultStyle is the default data mark style.
	DefaultStyle = "line"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported data mark styles.
var ValidStyles = map[string]bool{
	"line": true,
	"bar":  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Axes       string  `json:"axes,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	Steps      int     `json:"steps,omitempty"`
	AnchorZero bool    `json:"anchor_zero,omitempty"`
	Packed     bool    `json:"packed,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Title   string   `json:"title,omitempty"`
	Grid    bool     `json:"grid,omitempty"`

	// Refresh bypasses the layout cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed layout snapshot.
	Layout chart.Snapshot

	// SeriesHash is the content hash of the input series.
	SeriesHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: line, bar)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Steps == 0 {
		o.Steps = DefaultSteps
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateFontSize(o.FontSize); err != nil {
		return err
	}
	if err := errors.ValidateSteps(o.Steps); err != nil {
		return err
	}
	_, err := chart.ParseAxis(o.Axes)
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// AxisValue resolves the configured axes string. Call after validation.
func (o *Options) AxisValue() chart.Axis {
	a, err := chart.ParseAxis(o.Axes)
	if err != nil {
		return chart.AxisXY
	}
	return a
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:      o.Width,
		Height:     o.Height,
		Axes:       o.Axes,
		FontSize:   o.FontSize,
		Steps:      o.Steps,
		AnchorZero: o.AnchorZero,
		Packed:     o.Packed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Title:  o.Title,
	}
}
