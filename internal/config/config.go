// README: Config loader with env defaults for HTTP, DB, Redis, Maps, rate limiting and APM.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type MapsConfig struct {
	APIKey   string
	Region   string
	Language string
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type NewRelicConfig struct {
	Enabled    bool
	AppName    string
	LicenseKey string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// Empty DSN keeps the built-in catalog rates.
		DSN string
	}
	Redis struct {
		// Empty Addr disables rate limiting.
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
	Maps         MapsConfig
	QuoteTimeout time.Duration
	RateLimit    RateLimitConfig
	NewRelic     NewRelicConfig
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("GOCAB_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("GOCAB_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("GOCAB_REDIS_ADDR", "")
	cfg.Log.Level = envOrDefault("GOCAB_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("GOCAB_LOG_FORMAT", "text")
	cfg.Maps.APIKey = envOrDefault("GOCAB_MAPS_KEY", "")
	cfg.Maps.Region = envOrDefault("GOCAB_MAPS_REGION", "in")
	cfg.Maps.Language = envOrDefault("GOCAB_MAPS_LANGUAGE", "en")
	cfg.QuoteTimeout = envOrDefaultDuration("GOCAB_QUOTE_TIMEOUT", 10*time.Second)
	cfg.RateLimit.Limit = envOrDefaultInt("GOCAB_RATE_LIMIT", 60)
	cfg.RateLimit.Window = envOrDefaultDuration("GOCAB_RATE_WINDOW", time.Minute)
	cfg.NewRelic.Enabled = envOrDefaultBool("NEW_RELIC_ENABLED", false)
	cfg.NewRelic.AppName = envOrDefault("NEW_RELIC_APP_NAME", "gocab-api")
	cfg.NewRelic.LicenseKey = envOrDefault("NEW_RELIC_LICENSE_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
