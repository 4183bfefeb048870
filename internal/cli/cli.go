// Package cli implements the chartkit command-line interface.
//
// This package provides commands for computing chart layouts from data
// series, rendering them as SVG, PNG, or JSON artifacts, previewing
// charts in the terminal, serving the HTTP API, and managing the layout
// cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a chart layout and write it as JSON
//   - render: Run the full layout and render pipeline
//   - visualize: Render artifacts from a precomputed layout
//   - preview: Animate a chart in the terminal
//   - serve: Run the HTTP API server
//   - cache: Manage the layout and artifact cache
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/chartkit/chartkit/pkg/buildinfo"
	"github.com/chartkit/chartkit/pkg/cache"
	"github.com/chartkit/chartkit/pkg/pipeline"
	"github.com/chartkit/chartkit/pkg/series"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "chartkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "chartkit",
		Short:        "Chartkit renders data series as 2-D charts",
		Long:         `Chartkit is a CLI tool for turning labeled data series into laid-out 2-D charts, with SVG, PNG, and JSON output, terminal previews, and an HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		printWarning("cache directory unavailable, caching disabled")
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/chartkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// loadSeries reads a data file as either a TOML manifest or a JSON
// series, dispatching on the extension. Manifest chart options are
// merged into opts where the flags left them unset.
func loadSeries(path string, opts *pipeline.Options) (series.Series, error) {
	if strings.HasSuffix(path, ".toml") {
		m, err := series.ReadManifest(path)
		if err != nil {
			return series.Series{}, err
		}
		applyManifestOptions(m.Chart, opts)
		return m.Series(), nil
	}
	return series.ReadFile(path)
}

// applyManifestOptions fills pipeline options from a manifest's chart
// section. Explicit flags win over manifest values.
func applyManifestOptions(mc series.ManifestChart, opts *pipeline.Options) {
	if opts.Width == 0 && mc.Width != 0 {
		opts.Width = mc.Width
	}
	if opts.Height == 0 && mc.Height != 0 {
		opts.Height = mc.Height
	}
	if opts.Axes == "" && mc.Axes != "" {
		opts.Axes = mc.Axes
	}
	if opts.FontSize == 0 && mc.FontSize != 0 {
		opts.FontSize = mc.FontSize
	}
	if opts.Steps == 0 && mc.Steps != 0 {
		opts.Steps = mc.Steps
	}
	if mc.AnchorZero {
		opts.AnchorZero = true
	}
	if mc.Packed {
		opts.Packed = true
	}
	if opts.Style == "" && mc.Style != "" {
		opts.Style = mc.Style
	}
	if opts.Title == "" && mc.Title != "" {
		opts.Title = mc.Title
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input paths.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
