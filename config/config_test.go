package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil))

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "vehicles.json", cfg.VehiclesFile)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 120, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitExp)
	assert.True(t, cfg.CacheEnabled)
	assert.Empty(t, cfg.AdminToken)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"PORT":                  "8080",
		"VEHICLES_FILE":         "data/vehicles.yaml",
		"DATABASE_URL":          "file:project.db",
		"CORS_ORIGINS":          "https://example.com",
		"RATE_LIMIT_MAX":        "10",
		"RATE_LIMIT_EXPIRATION": "30s",
		"CACHE_ENABLED":         "false",
		"ADMIN_TOKEN":           "secret",
	}))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/vehicles.yaml", cfg.VehiclesFile)
	assert.Equal(t, "file:project.db", cfg.DatabaseURL)
	assert.Equal(t, "https://example.com", cfg.CORSOrigins)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Second, cfg.RateLimitExp)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, "secret", cfg.AdminToken)
}

func TestFromLookup_InvalidValuesFallBack(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"PORT":                  "",
		"RATE_LIMIT_MAX":        "lots",
		"RATE_LIMIT_EXPIRATION": "-5s",
		"CACHE_ENABLED":         "maybe",
	}))

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultRateLimitMax, cfg.RateLimitMax)
	assert.Equal(t, DefaultRateLimitExp, cfg.RateLimitExp)
	assert.True(t, cfg.CacheEnabled)
}
