package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardframe/internal/server"
	"github.com/matzehuels/cardframe/pkg/cache"
	"github.com/matzehuels/cardframe/pkg/pipeline"
	"github.com/matzehuels/cardframe/pkg/store"
)

// serveCommand creates the HTTP API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redis    string
		mongoURI string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve runs the template storage and layout resolution API. Without flags
it uses an in-memory template store and the local file cache; point it at
Redis and MongoDB for a shared deployment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			resolveCache, err := c.serveCache(ctx, redis, noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(resolveCache, nil, c.Logger)
			defer runner.Close()

			st, err := c.serveStore(ctx, mongoURI)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			srv := server.New(runner, st, c.Logger)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.ListenAddr, "listen address")
	cmd.Flags().StringVar(&redis, "redis", c.Config.RedisAddr, "redis address for a shared cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", c.Config.MongoURI, "mongodb uri for the template store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the resolution cache")

	return cmd
}

// serveCache picks the cache backend: Redis when configured, the local file
// cache otherwise.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return cache.NewRedisCache(ctx, redisAddr)
	}
	return c.newCache(false)
}

// serveStore picks the template store backend: MongoDB when configured, an
// in-memory store otherwise.
func (c *CLI) serveStore(ctx context.Context, mongoURI string) (store.Store, error) {
	if mongoURI != "" {
		c.Logger.Info("using mongodb store", "database", c.Config.MongoDatabase)
		return store.NewMongoStore(ctx, mongoURI, c.Config.MongoDatabase)
	}
	c.Logger.Warn("using in-memory template store; templates are lost on restart")
	return store.NewMemoryStore(), nil
}
