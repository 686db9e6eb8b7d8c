//
// NC News
// =======
// A REST API over topics, articles, comments and users stored in
// PostgreSQL.
//
// Boot the server:
// ----------------
// $ NCNEWS_DATABASE_PASSWORD=secret go run .
//
// Print the route docs instead of serving:
// ----------------
// $ go run . -routes
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/api/articles?sort_by=votes&limit=5
// {"articles":[...]}
//
// $ curl -X PATCH -d '{"inc_votes":1}' http://localhost:3333/api/articles/1
// {"article":{"article_id":1,...,"votes":101,"comment_count":13}}
//
// $ curl -X DELETE http://localhost:3333/api/articles/1/comments/2
//
// $ curl http://localhost:9999/metrics
//
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/docgen"
	"go.opentelemetry.io/otel/metric/global"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SergeyParamoshkin/ncnews/internal/config"
	"github.com/SergeyParamoshkin/ncnews/internal/database"
	"github.com/SergeyParamoshkin/ncnews/internal/logger"
	"github.com/SergeyParamoshkin/ncnews/internal/metrics"
	"github.com/SergeyParamoshkin/ncnews/internal/router"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

type App struct {
	sugarLogger *zap.SugaredLogger
	config      *config.Config
	db          *database.DB
	metrics     *metrics.Metrics
}

func main() {
	var (
		routes   = flag.Bool("routes", false, "Generate router documentation")
		addr     = flag.String("addr", "", "application address, overrides server.addr")
		diagAddr = flag.String("diag_addr", "", "diag address, overrides server.diag_addr")
	)

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *diagAddr != "" {
		cfg.Server.DiagAddr = *diagAddr
	}

	// Passing -routes prints markdown docs for the router and exits
	// without touching the database.
	if *routes {
		r := router.New(store.New(nil), router.Options{BasePath: cfg.Server.BasePath})
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/SergeyParamoshkin/ncnews",
			Intro:       "NC News REST API generated docs.",
		}))

		return
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync() //nolint:errcheck

	a := &App{
		sugarLogger: zl.Sugar().Named(config.ServiceName),
		config:      cfg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		a.sugarLogger.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func (a *App) run(ctx context.Context) error {
	var err error

	a.metrics, err = metrics.New(config.ServiceName)
	if err != nil {
		return err
	}
	global.SetMeterProvider(a.metrics.MeterProvider())

	a.db, err = database.New(ctx, &a.config.Database, a.sugarLogger)
	if err != nil {
		return err
	}
	defer a.db.Close()

	if a.config.Database.MigrateOnStart {
		if err := a.migrate(); err != nil {
			return err
		}
	}

	api := &http.Server{
		Addr: a.config.Server.Addr,
		Handler: router.New(store.New(a.db), router.Options{
			BasePath:    a.config.Server.BasePath,
			Logger:      a.sugarLogger,
			Middlewares: []func(http.Handler) http.Handler{a.metrics.Middleware},
			Health:      a.db,
		}),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", a.metrics.Handler().ServeHTTP)
	diag := &http.Server{
		Addr:              a.config.Server.DiagAddr,
		Handler:           diagRouter,
		ReadHeaderTimeout: a.config.Server.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range []*http.Server{api, diag} {
		srv := srv
		g.Go(func() error {
			a.sugarLogger.Infow("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.sugarLogger.Infow("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		return errors.Join(api.Shutdown(shutdownCtx), diag.Shutdown(shutdownCtx))
	})

	return g.Wait()
}

func (a *App) migrate() error {
	m, err := database.NewMigrator(a.db, a.sugarLogger)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.Up(); err != nil {
		m.Close() //nolint:errcheck

		return err
	}
	a.sugarLogger.Infow("schema up to date", "took", time.Since(start))

	return m.Close()
}
