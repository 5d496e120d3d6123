// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads from the environment (and an optional .env file) via envconfig

package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Store contains source configuration persistence settings
	Store StoreConfig

	// LogLevel controls logger verbosity (debug, info, warn, error)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `envconfig:"PORT" default:"8000"`

	// RateLimit is the allowed requests per second per client IP
	RateLimit int `envconfig:"RATE_LIMIT" default:"10"`

	// RateBurst is the burst size on top of the steady rate
	RateBurst int `envconfig:"RATE_BURST" default:"20"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string `envconfig:"CACHE_TYPE" default:"memory"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `envconfig:"REDIS_PASSWORD" default:""`

	// DB is the Redis database number
	DB int `envconfig:"REDIS_DB" default:"0"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int `envconfig:"MEMORY_CACHE_EXPIRATION" default:"3600"`
}

// StoreConfig holds source configuration persistence settings
type StoreConfig struct {
	// Path is the SQLite database file for configured sources
	Path string `envconfig:"SOURCE_STORE_PATH" default:"sources.db"`
}

// LoadFromEnv loads configuration from environment variables. A .env file
// in the working directory is honored when present but is not required.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
