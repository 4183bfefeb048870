package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chartkit/chartkit/pkg/pipeline"
)

// visualizeCommand creates the visualize command.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output  string
		formats string
		style   string
		title   string
		grid    bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render artifacts from a precomputed layout",
		Long: `Render a layout JSON file, as written by "chartkit layout", into one
or more artifact formats without recomputing the layout. Useful for
restyling a chart whose data and geometry have not changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Formats: parseFormats(formats),
				Style:   style,
				Title:   title,
				Grid:    grid,
				Logger:  c.Logger,
			}

			prog := newProgress(c.Logger)
			artifacts, err := pipeline.RenderFromLayoutData(data, opts)
			if err != nil {
				return err
			}
			prog.done("artifacts rendered")

			base := basePath(output, strings.TrimSuffix(args[0], ".layout.json"))
			printSuccess("Chart rendered")
			for _, format := range opts.Formats {
				path := fmt.Sprintf("%s.%s", base, format)
				if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
					return err
				}
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path base (default: layout path without extension)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "comma-separated output formats: svg, png, json (default svg)")
	cmd.Flags().StringVar(&style, "style", "", "data mark style: line, bar")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	cmd.Flags().BoolVar(&grid, "grid", false, "draw horizontal grid lines at Y ticks")

	return cmd
}
