package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartwright/chartwright/internal/server"
	"github.com/chartwright/chartwright/pkg/cache"
	"github.com/chartwright/chartwright/pkg/dataset"
	"github.com/chartwright/chartwright/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string // listen address
	redis       string // Redis address; empty uses the file cache
	redisDB     int    // Redis database number
	cachePrefix string // key prefix isolating this deployment's cache entries
	noCache     bool   // disable caching entirely
}

// newServeCmd creates the serve command for running the chart HTTP server.
// The server exposes one-shot rendering plus a live chart instance API where
// each instance keeps its latest frame on an in-memory surface.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for shared caching (e.g., localhost:6379)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&opts.cachePrefix, "cache-prefix", "", "cache key prefix for isolating deployments sharing a backend")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache backend, locator resolver, and pipeline runner
// into the HTTP server and blocks until the context is cancelled or the
// listener fails.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	var (
		c   cache.Cache
		err error
	)
	switch {
	case opts.redis != "":
		c, err = cache.NewRedisCache(ctx, opts.redis, "", opts.redisDB)
		if err != nil {
			return fmt.Errorf("connect to redis at %s: %w", opts.redis, err)
		}
		logger.Infof("Using Redis cache at %s", opts.redis)
	default:
		c, err = newCache(opts.noCache)
		if err != nil {
			return err
		}
	}

	keyer := serveKeyer(opts.cachePrefix)
	resolver := dataset.NewResolver(
		dataset.WithHTTPLoader(dataset.NewHTTPLoader(c, keyer)),
		dataset.WithMongoLoader(dataset.NewMongoLoader(c, keyer)),
	)
	runner := pipeline.NewRunner(c, keyer, resolver, logger)
	defer runner.Close()

	srv := server.New(runner, logger)
	printInfo("Listening on %s", opts.addr)
	printNextStep("Try", fmt.Sprintf("curl -s localhost%s/healthz", opts.addr))
	return srv.ListenAndServe(ctx, opts.addr)
}

// serveKeyer returns the cache keyer for a deployment prefix. An empty prefix
// keeps the default keying.
func serveKeyer(prefix string) cache.Keyer {
	if prefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, prefix)
}
