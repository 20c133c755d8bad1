package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cascade/internal/server"
	"github.com/matzehuels/cascade/pkg/cache"
	"github.com/matzehuels/cascade/pkg/pipeline"
	"github.com/matzehuels/cascade/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		mongoURI  string
		mongoDB   string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart rendering HTTP API",
		Long: `Run the chart rendering HTTP API.

The server exposes stateless rendering at POST /api/v1/render and a
chart store under /api/v1/charts. By default charts live in memory and
layouts are cached on the local filesystem; pass --mongo-uri to persist
charts in MongoDB and --redis-addr to share the cache across instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			startup := newProgress(logger)

			var layoutCache cache.Cache
			var err error
			switch {
			case noCache:
				layoutCache = cache.NewNullCache()
			case redisAddr != "":
				layoutCache, err = cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
				if err != nil {
					return fmt.Errorf("connect redis: %w", err)
				}
				logger.Info("using redis cache", "addr", redisAddr)
			default:
				layoutCache, err = newCache(false)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
			}

			var charts store.Store
			if mongoURI != "" {
				charts, err = store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI, Database: mongoDB})
				if err != nil {
					return fmt.Errorf("connect mongodb: %w", err)
				}
				logger.Info("using mongodb store", "database", mongoDB)
			} else {
				charts = store.NewMemoryStore()
			}
			defer charts.Close(ctx)

			srv := server.NewServer(server.Config{
				Runner: pipeline.NewRunner(layoutCache, nil, logger),
				Store:  charts,
				Logger: logger,
			})

			startup.done(fmt.Sprintf("server initialized, listening on %s", addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI (default: in-memory store)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "cascade", "MongoDB database name")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the layout cache (default: file cache)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")

	return cmd
}
