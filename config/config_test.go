package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, DefaultUpstreamURL, cfg.Upstream.URL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Zero(t, cfg.Catalog.TTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UPSTREAM_URL", "http://localhost:4000/doctors.json")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("CATALOG_TTL", "1m")
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://localhost:4000/doctors.json", cfg.Upstream.URL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, time.Minute, cfg.Catalog.TTL)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "6379", cfg.Redis.Port)
}

func TestLoadConfig_RejectsZeroRedisCacheTTL(t *testing.T) {
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_CACHE_TTL", "0s")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "Config.Redis.CacheTTL")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			App:      AppConfig{Port: "8080", Env: "test", LogLevel: "info"},
			Upstream: UpstreamConfig{URL: DefaultUpstreamURL, Timeout: time.Second},
			Redis:    RedisConfig{CacheTTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port not numeric", mutate: func(c *Config) { c.App.Port = "http" }, wantErr: "Config.App.Port must be numeric"},
		{name: "unknown log level", mutate: func(c *Config) { c.App.LogLevel = "loud" }, wantErr: "Config.App.LogLevel must be one of"},
		{name: "bad upstream url", mutate: func(c *Config) { c.Upstream.URL = "not a url" }, wantErr: "Config.Upstream.URL must be a valid URL"},
		{name: "negative ttl", mutate: func(c *Config) { c.Catalog.TTL = -time.Second }, wantErr: "Config.Catalog.TTL"},
		{name: "zero redis cache ttl", mutate: func(c *Config) { c.Redis.CacheTTL = 0 }, wantErr: "Config.Redis.CacheTTL must be greater than 0"},
		{name: "redis host without port", mutate: func(c *Config) { c.Redis.Host = "localhost" }, wantErr: "Config.Redis.Port is required when Host is set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
