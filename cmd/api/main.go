package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "listing_hub/internal/adapters/http_server"
	"listing_hub/internal/adapters/observability"
	redisad "listing_hub/internal/adapters/redis"
	"listing_hub/internal/app"
	"listing_hub/internal/domain"
	"listing_hub/internal/shared"
	"listing_hub/internal/storage/memory"
	mysqlrepo "listing_hub/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// catalog source
	var src domain.ListingSource
	switch cfg.Storage {
	case shared.StorageMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		src = mysqlrepo.New(db)
	default:
		src = memory.NewSample()
		log.Info().Msg("serving sample catalog")
	}

	// deps
	var cache domain.Cache = app.NopCache{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	q := app.NewQueryService(src, cache, cfg.CacheTTL)
	b := app.NewBookingService(src)

	// http
	srv := server.New(server.Options{RateLimitRPS: cfg.RateLimitRPS})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, B: b})

	log.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.Storage).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
