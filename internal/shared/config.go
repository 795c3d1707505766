package shared

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv       string
	LogLevel     string
	HTTPAddr     string
	MetricsAddr  string
	Pushgateway  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheTTL     time.Duration
	RateLimitRPS int
	SeedWorkers  int
	SeedFields   []string
	SeedLangs    []string
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
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		LogLevel:     env("LOG_LEVEL", "info"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		Pushgateway:  env("PUSHGATEWAY_URL", ""),
		MySQLDSN:     env("MYSQL_DSN", "root:root@tcp(localhost:3306)/geo?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisDB:      atoi("REDIS_DB", 0),
		RedisPass:    env("REDIS_PASSWORD", ""),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RateLimitRPS: atoi("RATE_LIMIT_RPS", 50),
		SeedWorkers:  atoi("SEED_WORKERS", 4),
		SeedFields:   list("SEED_FIELDS", "name,denonym"),
		SeedLangs:    list("SEED_LANGS", "de,fr,nl,es"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// list reads a comma-separated variable. Set to "-" for an explicitly empty list.
func list(k, def string) []string {
	v := env(k, def)
	if v == "-" {
		return []string{}
	}
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
