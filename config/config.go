package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort          = "3001"
	DefaultVehiclesFile  = "vehicles.json"
	DefaultCORSOrigins   = "*"
	DefaultRateLimitMax  = 120
	DefaultRateLimitExp  = time.Minute
	DefaultServerTimeout = 30 * time.Second
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port         string
	VehiclesFile string
	DatabaseURL  string
	CORSOrigins  string
	RateLimitMax int
	RateLimitExp time.Duration
	CacheEnabled bool
	AdminToken   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, falling back to defaults for unset
// or unparsable values.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	return Config{
		Port:         get("PORT", DefaultPort),
		VehiclesFile: get("VEHICLES_FILE", DefaultVehiclesFile),
		DatabaseURL:  get("DATABASE_URL", ""),
		CORSOrigins:  get("CORS_ORIGINS", DefaultCORSOrigins),
		RateLimitMax: parseInt("RATE_LIMIT_MAX", get("RATE_LIMIT_MAX", ""), DefaultRateLimitMax),
		RateLimitExp: parseDuration("RATE_LIMIT_EXPIRATION", get("RATE_LIMIT_EXPIRATION", ""), DefaultRateLimitExp),
		CacheEnabled: parseBool("CACHE_ENABLED", get("CACHE_ENABLED", ""), true),
		AdminToken:   get("ADMIN_TOKEN", ""),
		ReadTimeout:  DefaultServerTimeout,
		WriteTimeout: DefaultServerTimeout,
	}
}

func parseInt(key, value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[config] Invalid %s %q, using %d", key, value, def)
		return def
	}
	return n
}

func parseDuration(key, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[config] Invalid %s %q, using %s", key, value, def)
		return def
	}
	return d
}

func parseBool(key, value string, def bool) bool {
	if value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("[config] Invalid %s %q, using %t", key, value, def)
		return def
	}
	return b
}
