package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dana-c0914/tui.chart/internal/api"
	"github.com/dana-c0914/tui.chart/pkg/cache"
	"github.com/dana-c0914/tui.chart/pkg/httputil"
	"github.com/dana-c0914/tui.chart/pkg/store"
)

// shutdownTimeout bounds graceful shutdown when the serve context is
// cancelled.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command running the sizing HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		config    string
		measurer  string
		redisAddr string
		mongoURI  string
		mongoDB   string
		mongoColl string
		cacheTTL  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the legend sizing HTTP API",
		Long: `Run an HTTP server exposing the sizing engine as a JSON API.

Sizing responses are cached in memory by default; --redis switches to
a shared redis cache so multiple instances agree. Layout persistence
is off unless --mongo-uri points at a mongo deployment.

Examples:
  legend serve --addr :8080
  legend serve --redis localhost:6379 --mongo-uri mongodb://localhost:27017`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			cfg, err := loadThemeConfig(config)
			if err != nil {
				return err
			}
			m, err := newMeasurer(measurer)
			if err != nil {
				return err
			}

			cch, err := serveCache(ctx, redisAddr)
			if err != nil {
				return err
			}
			defer cch.Close()

			st, err := serveStore(ctx, mongoURI, mongoDB, mongoColl)
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close(context.Background())
			}

			srv := api.NewServer(api.Config{
				Logger:   c.Logger,
				Measurer: m,
				Consts:   cfg.Constants,
				Cache:    cch,
				Store:    st,
				CacheTTL: cacheTTL,
			})

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("serving", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			c.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&config, "config", "c", "", "path to a TOML theme config")
	cmd.Flags().StringVarP(&measurer, "measurer", "m", measurerFontFace, "text measurer: fontface, cells, approx")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for shared response caching (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "mongo URI enabling layout persistence")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", store.DefaultDatabase, "mongo database for layout documents")
	cmd.Flags().StringVar(&mongoColl, "mongo-collection", store.DefaultCollection, "mongo collection for layout documents")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", time.Hour, "sizing response cache TTL")

	return cmd
}

// serveCache picks the response cache backend. Connection attempts retry
// with backoff since serve often starts alongside its backends.
func serveCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr == "" {
		return cache.NewMemoryCache(), nil
	}

	var cch cache.Cache
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		cch, err = cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("redis cache connected", "addr", redisAddr)
	return cch, nil
}

// serveStore connects the layout store when a mongo URI is given.
func serveStore(ctx context.Context, uri, db, coll string) (store.Store, error) {
	if uri == "" {
		return nil, nil
	}

	var st store.Store
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		st, err = store.NewMongoStore(ctx, uri, db, coll)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("mongo store connected", "database", db, "collection", coll)
	return st, nil
}
