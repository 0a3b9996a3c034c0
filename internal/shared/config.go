package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	AppEnv       string        `toml:"app_env"`
	LogLevel     string        `toml:"log_level"`
	HTTPAddr     string        `toml:"http_addr"`
	MetricsAddr  string        `toml:"metrics_addr"`
	Storage      string        `toml:"storage"`        // memory|mysql
	MySQLDSN     string        `toml:"mysql_dsn"`
	RedisAddr    string        `toml:"redis_addr"`     // empty disables the cache
	RedisDB      int           `toml:"redis_db"`
	RedisPass    string        `toml:"redis_password"`
	CacheTTL     time.Duration `toml:"-"`
	CacheTTLSecs int           `toml:"cache_ttl_seconds"`
	RateLimitRPS int           `toml:"rate_limit_rps"` // 0 disables limiting
	SeedWorkers  int           `toml:"seed_workers"`
}

func defaults() Config {
	return Config{
		AppEnv:       "prod",
		LogLevel:     "info",
		HTTPAddr:     ":8080",
		MetricsAddr:  ":9100",
		Storage:      StorageMemory,
		MySQLDSN:     "root:root@tcp(localhost:3306)/listings?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		CacheTTLSecs: 900,
		RateLimitRPS: 50,
		SeedWorkers:  4,
	}
}

// Load reads CONFIG_FILE (TOML) when set, then applies environment overrides.
func Load() Config {
	c := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("config file")
		}
	}
	applyEnv(&c)
	c.CacheTTL = time.Duration(c.CacheTTLSecs) * time.Second

	if c.Storage != StorageMemory && c.Storage != StorageMySQL {
		log.Warn().Str("storage", c.Storage).Msg("unknown STORAGE, using memory")
		c.Storage = StorageMemory
	}
	if c.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty, caching disabled")
	}
	return c
}

func applyEnv(c *Config) {
	c.AppEnv = env("APP_ENV", c.AppEnv)
	c.LogLevel = env("LOG_LEVEL", c.LogLevel)
	c.HTTPAddr = env("HTTP_ADDR", c.HTTPAddr)
	c.MetricsAddr = env("METRICS_ADDR", c.MetricsAddr)
	c.Storage = env("STORAGE", c.Storage)
	c.MySQLDSN = env("MYSQL_DSN", c.MySQLDSN)
	c.RedisAddr = env("REDIS_ADDR", c.RedisAddr)
	c.RedisPass = env("REDIS_PASSWORD", c.RedisPass)
	c.RedisDB = atoi("REDIS_DB", c.RedisDB)
	c.CacheTTLSecs = atoi("CACHE_TTL_SECONDS", c.CacheTTLSecs)
	c.RateLimitRPS = atoi("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.SeedWorkers = atoi("SEED_WORKERS", c.SeedWorkers)
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
