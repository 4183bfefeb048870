package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chartkit/chartkit/pkg/pipeline"
	"github.com/chartkit/chartkit/pkg/render"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		width      float64
		height     float64
		axes       string
		fontSize   float64
		steps      int
		anchorZero bool
		packed     bool
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute a chart layout and write it as JSON",
		Long: `Compute a chart layout from a data series and write the resulting
snapshot as JSON. The input can be a JSON series file or a TOML manifest
with a [chart] section; manifest options apply where flags are unset.

The layout JSON contains the resolved scale, negotiated paddings, the
inner frame, projected point positions, and placed axis labels. It can
be rendered later without recomputing via "chartkit render".`,
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
				Logger:     c.Logger,
			}

			s, err := loadSeries(args[0], &opts)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			snap, err := pipeline.ComputeLayout(s, opts)
			if err != nil {
				return err
			}
			prog.done("layout computed")

			path := output
			if path == "" {
				path = basePath("", args[0]) + ".layout.json"
			}
			if err := render.WriteLayoutFile(path, snap); err != nil {
				return err
			}

			printSuccess("Layout written")
			printFile(path)
			printStats(len(snap.Points), snap.Scale.Min, snap.Scale.Max, false)
			printNextStep("Render it", fmt.Sprintf("chartkit render %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: input with .layout.json)")
	cmd.Flags().Float64Var(&width, "width", 0, "surface width in pixels")
	cmd.Flags().Float64Var(&height, "height", 0, "surface height in pixels")
	cmd.Flags().StringVar(&axes, "axes", "", "visible axes: "+strings.Join([]string{"none", "x", "y", "xy"}, ", "))
	cmd.Flags().Float64Var(&fontSize, "font-size", 0, "axis label font size")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of Y axis intervals")
	cmd.Flags().BoolVar(&anchorZero, "anchor-zero", false, "anchor the scale minimum to zero")
	cmd.Flags().BoolVar(&packed, "packed", false, "partition the X axis into equal cells")

	return cmd
}
