package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"coral_cove/internal/adapters/alohapay"
	server "coral_cove/internal/adapters/http_server"
	"coral_cove/internal/adapters/observability"
	redisad "coral_cove/internal/adapters/redis"
	"coral_cove/internal/adapters/telegram"
	"coral_cove/internal/app"
	"coral_cove/internal/domain"
	"coral_cove/internal/shared"
	"coral_cove/internal/storage/memory"
	mysqlrepo "coral_cove/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// storage
	var repo domain.HotelRepository
	switch cfg.Storage {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	default:
		today := time.Now().UTC().Truncate(24 * time.Hour)
		repo = memory.NewDefault(today, cfg.AvailabilityDays)
		log.Info().Int("days", cfg.AvailabilityDays).Msg("using in-memory catalog")
	}

	// cache is optional
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, running without cache")
		} else {
			cache = rc
		}
	}

	// external services
	var provider domain.PaymentProvider = alohapay.Unconfigured{}
	if cfg.AlohaPayKey != "" {
		c, err := alohapay.New(cfg.AlohaPayBase, cfg.AlohaPayKey, cfg.AlohaPayRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Aloha Pay client")
		}
		provider = c
	}
	notifier, err := telegram.New(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telegram notifier")
	}

	h := &server.Handlers{
		Q: app.NewQueryService(repo, cache, cfg.CacheTTL),
		B: app.NewBookingService(repo, notifier),
		P: app.NewPaymentService(provider, cache, cfg.CacheTTL),
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.Storage).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
