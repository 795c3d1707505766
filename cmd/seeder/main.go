package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"geo_i18n/internal/adapters/observability"
	redisad "geo_i18n/internal/adapters/redis"
	"geo_i18n/internal/app"
	"geo_i18n/internal/domain"
	"geo_i18n/internal/fixtures"
	"geo_i18n/internal/shared"
	mysqlrepo "geo_i18n/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	observability.Serve(cfg.MetricsAddr)

	fields, langs := app.NewFilter(cfg.SeedFields, cfg.SeedLangs)
	log.Info().
		Strs("fields", cfg.SeedFields).
		Strs("langs", cfg.SeedLangs).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	for _, kind := range domain.Kinds {
		if err := fixtures.Validate(fixtures.List(kind)); err != nil {
			log.Fatal().Err(err).Str("kind", string(kind)).Msg("invalid fixtures")
		}
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	seeder := app.NewSeedService(mysqlrepo.New(db), cache)

	workers := cfg.SeedWorkers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var failed atomic.Int64

seed:
	for _, kind := range domain.Kinds {
		for _, rec := range fixtures.List(kind) {
			// acquire before launching the goroutine; release inside it
			if err := sem.Acquire(ctx, 1); err != nil {
				log.Error().Err(err).Msg("seeding interrupted")
				break seed
			}

			wg.Add(1)
			go func(kind domain.Kind, name string) {
				defer wg.Done()
				defer sem.Release(1)

				p, err := seeder.SeedPlace(ctx, kind, name, fields, langs)
				if err != nil {
					failed.Add(1)
					log.Warn().Str("kind", string(kind)).Str("name", name).Err(err).Msg("seed failed")
					return
				}
				log.Info().Str("kind", string(kind)).Str("name", name).Int64("id", p.ID).Msg("seed ok")
			}(kind, rec.Name)
		}
	}

	wg.Wait()
	reportSeedMetrics(cfg.Pushgateway)
	if n := failed.Load(); n > 0 {
		log.Fatal().Int64("failed", n).Msg("seeding completed with errors")
	}
	log.Info().Msg("seeding completed")
}

// reportSeedMetrics logs the seed counters and pushes them when a gateway is
// configured. It runs on a fresh context so an interrupt still reports.
func reportSeedMetrics(gateway string) {
	places, translations, err := observability.SeedTotals(prometheus.DefaultGatherer)
	if err != nil {
		log.Warn().Err(err).Msg("gather seed metrics failed")
	} else {
		log.Info().
			Float64("places_ok", places["ok"]).
			Float64("places_not_found", places["not_found"]).
			Float64("places_error", places["error"]).
			Float64("translations", translations).
			Msg("seed metrics")
	}

	if gateway == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := observability.PushSeed(ctx, gateway, "geo_seeder"); err != nil {
		log.Warn().Err(err).Str("gateway", gateway).Msg("push seed metrics failed")
		return
	}
	log.Info().Str("gateway", gateway).Msg("seed metrics pushed")
}
