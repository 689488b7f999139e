package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"doctor-directory/pkg/validator"

	"github.com/spf13/viper"
)

const DefaultUpstreamURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Catalog  CatalogConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"required"`
	LogLevel string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
}

type UpstreamConfig struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"gte=0"`
}

// CatalogConfig controls how long a fetched doctor list is served from memory.
// A zero TTL keeps the first successful list for the lifetime of the process.
type CatalogConfig struct {
	TTL time.Duration `validate:"gte=0"`
}

// RedisConfig is optional; an empty Host disables the raw catalog cache.
// CacheTTL must be positive.
type RedisConfig struct {
	Host     string
	Port     string `validate:"required_with=Host"`
	Password string
	DB       int           `validate:"gte=0"`
	CacheTTL time.Duration `validate:"gt=0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Upstream: UpstreamConfig{
			URL:     v.GetString("UPSTREAM_URL"),
			Timeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Catalog: CatalogConfig{
			TTL: v.GetDuration("CATALOG_TTL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			CacheTTL: v.GetDuration("REDIS_CACHE_TTL"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	cv := validator.NewValidator()
	if err := cv.Validate(c); err != nil {
		return fmt.Errorf("invalid config: %v", cv.FormatValidationErrors(err))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("UPSTREAM_URL", DefaultUpstreamURL)
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("CATALOG_TTL", time.Duration(0))
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CACHE_TTL", 5*time.Minute)
}
