package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/authsvc"
	server "github.com/AnthonyM972321/LuxuryBot/internal/adapters/http_server"
	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/localcache"
	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/observability"
	"github.com/AnthonyM972321/LuxuryBot/internal/app"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
	"github.com/AnthonyM972321/LuxuryBot/internal/shared"
	"github.com/AnthonyM972321/LuxuryBot/internal/storage/docstore"
	mysqlrepo "github.com/AnthonyM972321/LuxuryBot/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// local cache
	cache, err := localcache.Open(cfg.CachePath, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CachePath).Msg("open local cache failed")
	}
	defer cache.Close()

	// remote store, selected once at startup
	var remote domain.RemoteStore
	switch cfg.RemoteBackend {
	case shared.BackendDocstore:
		remote = docstore.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log.Logger)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using document store backend")
	case shared.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		remote = mysqlrepo.New(db)
		log.Info().Msg("using relational backend")
	default:
		log.Warn().Msg("no remote backend, state is local only")
	}

	auth := authsvc.New(cfg.AuthBase, cfg.AuthKey, 10, log.Logger)

	rec := app.New(app.Options{
		Remote:          remote,
		Cache:           cache,
		Auth:            auth,
		GenerationDelay: cfg.GenDelay,
		ImportStepDelay: cfg.ImportDelay,
		Log:             log.Logger,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rec.Start(ctx)
	defer rec.Close()

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{R: rec, Auth: auth, Flags: cache})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
