package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Session   SessionConfig   `mapstructure:"session"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig selects where the product catalog is loaded from
type CatalogConfig struct {
	Source            string  `mapstructure:"source"` // "sample", "json", "sqlite" or "http"
	Path              string  `mapstructure:"path"`
	URL               string  `mapstructure:"url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// SessionConfig holds conversation store configuration
type SessionConfig struct {
	Store    string        `mapstructure:"store"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RecommendConfig holds recommendation engine configuration
type RecommendConfig struct {
	DefaultLimit      int     `mapstructure:"default_limit"`
	ChatLimit         int     `mapstructure:"chat_limit"`
	RelaxBudgetFactor float64 `mapstructure:"relax_budget_factor"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/laptopfinder/")

	// Environment variable settings
	v.SetEnvPrefix("LAPTOPFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.source", "sample")
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.url", "")
	v.SetDefault("catalog.requests_per_second", 1)

	// Session defaults
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.redis_url", "")
	v.SetDefault("session.ttl", "24h")

	// Recommendation defaults
	v.SetDefault("recommend.default_limit", 5)
	v.SetDefault("recommend.chat_limit", 3)
	v.SetDefault("recommend.relax_budget_factor", 1.10)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Catalog.Source {
	case "sample":
	case "json", "sqlite":
		if config.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for source '%s' (set LAPTOPFINDER_CATALOG_PATH)", config.Catalog.Source)
		}
	case "http":
		if config.Catalog.URL == "" {
			return fmt.Errorf("catalog URL is required for source 'http' (set LAPTOPFINDER_CATALOG_URL)")
		}
	default:
		return fmt.Errorf("catalog source must be 'sample', 'json', 'sqlite' or 'http', got: %s", config.Catalog.Source)
	}

	if config.Session.Store != "memory" && config.Session.Store != "redis" {
		return fmt.Errorf("session store must be 'memory' or 'redis', got: %s", config.Session.Store)
	}

	if config.Session.Store == "redis" && config.Session.RedisURL == "" {
		return fmt.Errorf("redis URL is required when session store is 'redis'")
	}

	if config.Recommend.DefaultLimit <= 0 || config.Recommend.ChatLimit <= 0 {
		return fmt.Errorf("recommendation limits must be positive")
	}

	if config.Recommend.RelaxBudgetFactor < 1 {
		return fmt.Errorf("relax budget factor must be at least 1, got: %v", config.Recommend.RelaxBudgetFactor)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("per-IP rate limit must not be negative")
	}

	return nil
}

// loadEnvFile exports variables from ./.env without overriding ones already
// set in the environment. A missing file is not an error.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}
