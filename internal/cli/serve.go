package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chartkit/chartkit/internal/server"
	"github.com/chartkit/chartkit/pkg/cache"
	"github.com/chartkit/chartkit/pkg/pipeline"
	"github.com/chartkit/chartkit/pkg/store"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		redis       string
		mongo       string
		cachePrefix string
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the chart API over HTTP. Charts are created by POSTing a data
series to /api/charts and can be listed, fetched, deleted, and rendered
as SVG or PNG.

By default charts are held in memory and layouts are cached on disk.
Pass --mongo to persist charts in MongoDB and --redis to share the
layout and artifact cache between instances.`,
		Example: `  chartkit serve
  chartkit serve --addr :9000 --redis localhost:6379
  chartkit serve --mongo mongodb://localhost:27017`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			chartStore, err := newStore(ctx, mongo)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := chartStore.Close(closeCtx); err != nil {
					c.Logger.Error("closing store", "err", err)
				}
			}()

			layoutCache, err := newServeCache(ctx, redis, noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(layoutCache, serveKeyer(cachePrefix), c.Logger)
			defer runner.Close()

			srv := server.New(server.Options{
				Addr:   addr,
				Store:  chartStore,
				Runner: runner,
				Logger: c.Logger,
			})

			c.Logger.Info("starting server", "addr", addr)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address or URL for the shared cache")
	cmd.Flags().StringVar(&mongo, "mongo", "", "MongoDB URI for chart persistence")
	cmd.Flags().StringVar(&cachePrefix, "cache-prefix", "", "key prefix isolating this instance's cache entries")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout and artifact cache")

	return cmd
}

// newStore selects the chart store backend. A MongoDB URI enables
// persistence; otherwise charts live in process memory.
func newStore(ctx context.Context, mongoURI string) (store.Store, error) {
	if mongoURI != "" {
		return store.NewMongoStore(ctx, mongoURI)
	}
	return store.NewMemoryStore(), nil
}

// serveKeyer scopes cache keys under a prefix so instances sharing one
// Redis can keep separate entries. An empty prefix keeps the default
// key layout.
func serveKeyer(prefix string) cache.Keyer {
	if prefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, prefix)
}

// newServeCache selects the cache backend for the server. A Redis
// address enables a shared cache; otherwise the local file cache is
// used.
func newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		if strings.Contains(redisAddr, "://") {
			return cache.NewRedisCacheFromURL(ctx, redisAddr)
		}
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return newCache(false)
}
