package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	Storage     string // memory|mysql
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	AlohaPayBase string
	AlohaPayKey  string
	AlohaPayRPS  int

	TelegramToken  string
	TelegramChatID int64

	SeedWorkers      int
	AvailabilityDays int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		Storage:     env("STORAGE", "memory"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/coralcove?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		AlohaPayBase: env("ALOHA_PAY_API_URL", "https://api-dev.alohapay.co"),
		AlohaPayKey:  env("ALOHA_PAY_API_KEY", ""),
		AlohaPayRPS:  atoi("ALOHA_PAY_RPS", 5),

		TelegramToken: env("TELEGRAM_BOT_TOKEN", ""),

		SeedWorkers:      atoi("SEED_WORKERS", 4),
		AvailabilityDays: atoi("AVAILABILITY_DAYS", 90),
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warn().Str("value", v).Msg("TELEGRAM_CHAT_ID is not a number, notifications disabled")
		} else {
			c.TelegramChatID = id
		}
	}
	if c.AlohaPayKey == "" {
		log.Warn().Msg("ALOHA_PAY_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
