package pipeline

import (
	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/errors"
	"github.com/chartkit/chartkit/pkg/render"
)

// =============================================================================
// Rendering
// =============================================================================

// RenderFromLayout generates output artifacts in the requested formats
// from a computed layout snapshot.
func RenderFromLayout(snap chart.Snapshot, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	style, err := render.ParseStyle(opts.Style)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.RenderSVG(snap, svgOptions(style, opts)...)
		case FormatPNG:
			data, err = render.RenderPNG(snap,
				render.WithPNGStyle(style),
				render.WithPNGTitle(opts.Title))
		case FormatJSON:
			data, err = render.MarshalLayout(snap)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(layoutData []byte, opts Options) (map[string][]byte, error) {
	snap, err := render.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, err
	}
	return RenderFromLayout(snap, opts)
}

func svgOptions(style render.Style, opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{render.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, render.WithTitle(opts.Title))
	}
	if opts.Grid {
		svgOpts = append(svgOpts, render.WithGrid())
	}
	return svgOpts
}
