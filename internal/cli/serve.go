package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backgen/backgen/internal/server"
	"github.com/backgen/backgen/pkg/cache"
	"github.com/backgen/backgen/pkg/pipeline"
)

// serveCommand creates the serve command for the web front end.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		redisAddr  string
		scope      string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front end",
		Long: `Run the web front end.

Every visit to / redirects to a page for a fresh random seed; /gen/{id}
addresses one seed permanently. Generated assets are cached: in Redis
when --redis is given, on disk otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath, redisAddr, scope, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration document (TOML)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the artifact cache")
	cmd.Flags().StringVar(&scope, "scope", "", "cache key prefix when deployments share one backend")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache backend, runner and server together.
func (c *CLI) runServe(ctx context.Context, addr, configPath, redisAddr, scope string, noCache bool) error {
	store, err := c.newServeCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope+":")
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	srv := server.New(runner, c.Logger, server.WithConfigPath(configPath))
	return srv.ListenAndServe(ctx, addr)
}

// newServeCache picks the cache backend for the server: Redis when
// configured, the file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return newCache(false)
}
