package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"listing_hub/internal/adapters/observability"
	redisad "listing_hub/internal/adapters/redis"
	"listing_hub/internal/app"
	"listing_hub/internal/domain"
	"listing_hub/internal/shared"
	"listing_hub/internal/storage/memory"
	mysqlrepo "listing_hub/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	listings, err := memory.NewSample().ListListings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load sample catalog")
	}
	log.Info().
		Int("listings", len(listings)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	seed := app.NewSeedService(mysqlrepo.New(db), cache)

	workers := cfg.SeedWorkers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, l := range listings {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(l domain.Listing) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seed.SeedListing(ctx, l); err != nil {
				log.Warn().Str("id", l.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("id", l.ID).Int("reviews", len(l.Reviews)).Msg("seed ok")
		}(l)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
