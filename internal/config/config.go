package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Live scores feed
	FeedURL     string        `mapstructure:"FEED_URL"`
	FeedTimeout time.Duration `mapstructure:"FEED_TIMEOUT"`

	// Refresh cycle
	RefreshInterval time.Duration `mapstructure:"REFRESH_INTERVAL"`
	FeedCacheTTL    time.Duration `mapstructure:"FEED_CACHE_TTL"`

	// Redis
	RedisURL     string `mapstructure:"REDIS_URL"`
	CacheEnabled bool   `mapstructure:"CACHE_ENABLED"`

	// Roster
	RosterPath string `mapstructure:"ROSTER_PATH"`

	// Player headshots rendered on the dashboard
	HeadshotURLTemplate string `mapstructure:"HEADSHOT_URL_TEMPLATE"`

	// Resilience
	RetryMaxAttempts        int           `mapstructure:"RETRY_MAX_ATTEMPTS"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`
	CircuitBreakerTimeout   time.Duration `mapstructure:"CIRCUIT_BREAKER_TIMEOUT"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("FEED_URL", "https://www.masters.com/en_US/scores/feeds/2025/scores.json")
	viper.SetDefault("FEED_TIMEOUT", "10s")
	viper.SetDefault("REFRESH_INTERVAL", "5m")
	viper.SetDefault("FEED_CACHE_TTL", "5m")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("ROSTER_PATH", "configs/roster.yaml")
	viper.SetDefault("HEADSHOT_URL_TEMPLATE", "https://images.masters.com/players/2025/240x240/%s.jpg")
	viper.SetDefault("RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("CIRCUIT_BREAKER_TIMEOUT", "60s")
	viper.SetDefault("LOG_LEVEL", "")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.RefreshInterval <= 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be positive, got %s", config.RefreshInterval)
	}
	if config.FeedURL == "" {
		return nil, fmt.Errorf("FEED_URL must not be empty")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
