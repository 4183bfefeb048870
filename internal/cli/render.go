package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chartkit/chartkit/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formats    string
		style      string
		title      string
		grid       bool
		width      float64
		height     float64
		axes       string
		fontSize   float64
		steps      int
		anchorZero bool
		packed     bool
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Run the full layout and render pipeline",
		Long: `Compute a chart layout from a data series and render it into one
or more artifact formats. The input can be a JSON series file or a TOML
manifest with a [chart] section; manifest options apply where flags are
unset.

Layouts and artifacts are cached under ~/.cache/chartkit/ keyed on the
series content and options, so repeated renders with the same inputs
are served from cache. Use --refresh to force recomputation or
--no-cache to skip caching entirely.`,
		Example: `  chartkit render sales.json
  chartkit render sales.json -f svg,png --style bar --title "Q3 Sales"
  chartkit render manifest.toml -o out/chart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Width:      width,
				Height:     height,
				Axes:       axes,
				FontSize:   fontSize,
				Steps:      steps,
				AnchorZero: anchorZero,
				Packed:     packed,
				Formats:    parseFormats(formats),
				Style:      style,
				Title:      title,
				Grid:       grid,
				Refresh:    refresh,
				Logger:     c.Logger,
			}

			s, err := loadSeries(args[0], &opts)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Rendering chart...")
			spinner.Start()

			result, err := runner.Execute(cmd.Context(), s, opts)
			if err != nil {
				if spinner.Cancelled() {
					spinner.Stop()
					return err
				}
				spinner.StopWithError("Render failed")
				return err
			}
			spinner.Stop()

			base := basePath(output, args[0])
			printSuccess("Chart rendered")
			for _, format := range opts.Formats {
				path := fmt.Sprintf("%s.%s", base, format)
				if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
					return err
				}
				printFile(path)
			}
			printStats(result.Stats.PointCount, result.Layout.Scale.Min, result.Layout.Scale.Max, result.CacheInfo.RenderHit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path base (default: input path without extension)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "comma-separated output formats: svg, png, json (default svg)")
	cmd.Flags().StringVar(&style, "style", "", "data mark style: line, bar")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	cmd.Flags().BoolVar(&grid, "grid", false, "draw horizontal grid lines at Y ticks")
	cmd.Flags().Float64Var(&width, "width", 0, "surface width in pixels")
	cmd.Flags().Float64Var(&height, "height", 0, "surface height in pixels")
	cmd.Flags().StringVar(&axes, "axes", "", "visible axes: none, x, y, xy")
	cmd.Flags().Float64Var(&fontSize, "font-size", 0, "axis label font size")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of Y axis intervals")
	cmd.Flags().BoolVar(&anchorZero, "anchor-zero", false, "anchor the scale minimum to zero")
	cmd.Flags().BoolVar(&packed, "packed", false, "partition the X axis into equal cells")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout and artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}
