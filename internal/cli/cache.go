package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache command with its subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
		Long: `Manage the local cache of computed layouts and rendered artifacts.
Cached entries let repeated renders of the same series and options skip
the layout and render stages.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheInfoCommand creates the cache info subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}

			entries, size, err := statCacheDir(dir)
			if err != nil {
				return err
			}

			printInfo("Cache directory")
			printDetail("%s", dir)
			printDetail("%d entries, %s", entries, formatBytes(size))
			return nil
		},
	}
}

// cacheClearCommand creates the cache clear subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}

			removed, freed, err := clearCacheDir(dir)
			if err != nil {
				return err
			}

			if removed == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cache cleared")
			printDetail("%d entries removed (%s)", removed, formatBytes(freed))
			return nil
		},
	}
}

// cachePathCommand creates the cache path subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			cmd.Println(dir)
			return nil
		},
	}
}

// statCacheDir counts cache entry files under dir and sums their sizes.
// A missing directory is treated as an empty cache.
func statCacheDir(dir string) (int, int64, error) {
	var entries int
	var size int64

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		entries++
		size += info.Size()
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return entries, size, err
	}
	return entries, size, nil
}

// clearCacheDir removes all cache entry files under dir and reports the
// number of entries removed and the bytes freed. A missing directory is
// treated as an empty cache.
func clearCacheDir(dir string) (int, int64, error) {
	var removed int
	var freed int64

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		size := info.Size()
		if err := os.Remove(path); err != nil {
			return err
		}
		removed++
		freed += size
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return removed, freed, err
	}
	return removed, freed, nil
}

// formatBytes renders a byte count in human-readable form.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
