package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"coral_cove/internal/adapters/observability"
	redisad "coral_cove/internal/adapters/redis"
	"coral_cove/internal/app"
	"coral_cove/internal/catalog"
	"coral_cove/internal/domain"
	"coral_cove/internal/shared"
	mysqlrepo "coral_cove/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "seeder")

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("days", cfg.AvailabilityDays).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	seed := app.NewSeedService(repo, cache)

	if err := seed.SeedAmenities(ctx, catalog.Amenities()); err != nil {
		log.Fatal().Err(err).Msg("amenity seed failed")
	}

	rooms := catalog.Rooms()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	entries := catalog.Generate(rooms, today, cfg.AvailabilityDays)

	workers := cfg.SeedWorkers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)

	for _, r := range rooms {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(room domain.Room) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seed.SeedRoom(ctx, room, entries); err != nil {
				failed.Add(1)
				log.Warn().Str("room_id", room.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("room_id", room.ID).Msg("seed ok")
		}(r)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int32("failed", n).Msg("seeding finished with errors")
	}
	log.Info().Int("rooms", len(rooms)).Msg("seeding completed")
}
