package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog source kinds
const (
	SourceMongo = "mongo"
	SourceS3    = "s3"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	S3      S3Config
	Catalog CatalogConfig
	Engine  EngineConfig
	Log     LogConfig
	OTEL    OTELConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string
	MaxBodySizeMB  int
	IdempotencyTTL time.Duration
}

// MongoDBConfig holds MongoDB connection configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
}

// JWTConfig holds bearer token configuration
type JWTConfig struct {
	Secret string
}

// S3Config holds S3-compatible object storage configuration
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	TiersKey  string
	FoodsKey  string
}

// CatalogConfig selects where tier configuration and the food catalog are read from
type CatalogConfig struct {
	TierSource   string // "mongo" or "s3"
	FoodSource   string // "mongo" or "s3"
	TierCacheTTL time.Duration
}

// EngineConfig holds evaluation and search tuning
type EngineConfig struct {
	SearchDefaultLimit     int
	SearchMaxLimit         int
	ProgressFallbackTarget float64
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string
	FormatJSON bool
	File       string // empty logs to stdout
	ToStdout   bool   // also write to stdout when File is set
}

// OTELConfig holds OpenTelemetry exporter configuration
type OTELConfig struct {
	Enabled        bool
	Endpoint       string
	InstanceID     string
	Token          string
	ServiceName    string
	ServiceVersion string
	Environment    string
}

// Load reads configuration from environment variables
// It attempts to load from .env file first, then falls back to system env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// FromEnv builds a Config from the current environment without validating it
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			MaxBodySizeMB:  getEnvAsInt("MAX_BODY_SIZE_MB", 1),
			IdempotencyTTL: getEnvAsDuration("IDEMPOTENCY_TTL", 10*time.Minute),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "fitgauge"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Region:    getEnv("S3_REGION", "us-east-1"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", "fitgauge-catalog"),
			TiersKey:  getEnv("S3_TIERS_KEY", "tiers.json"),
			FoodsKey:  getEnv("S3_FOODS_KEY", "foods.json"),
		},
		Catalog: CatalogConfig{
			TierSource:   getEnv("TIER_SOURCE", SourceMongo),
			FoodSource:   getEnv("FOOD_SOURCE", SourceMongo),
			TierCacheTTL: getEnvAsDuration("TIER_CACHE_TTL", 10*time.Minute),
		},
		Engine: EngineConfig{
			SearchDefaultLimit:     getEnvAsInt("SEARCH_DEFAULT_LIMIT", 10),
			SearchMaxLimit:         getEnvAsInt("SEARCH_MAX_LIMIT", 50),
			ProgressFallbackTarget: getEnvAsFloat("PROGRESS_FALLBACK_TARGET", 0),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			FormatJSON: getEnvAsBool("LOG_FORMAT_JSON", false),
			File:       getEnv("LOG_FILE", ""),
			ToStdout:   getEnvAsBool("LOG_TO_STDOUT", true),
		},
		OTEL: OTELConfig{
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			InstanceID:     getEnv("OTEL_INSTANCE_ID", ""),
			Token:          getEnv("OTEL_TOKEN", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "fitgauge-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("OTEL_ENVIRONMENT", "development"),
		},
	}
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if !validSource(c.Catalog.TierSource) {
		return fmt.Errorf("TIER_SOURCE must be %q or %q, got %q", SourceMongo, SourceS3, c.Catalog.TierSource)
	}
	if !validSource(c.Catalog.FoodSource) {
		return fmt.Errorf("FOOD_SOURCE must be %q or %q, got %q", SourceMongo, SourceS3, c.Catalog.FoodSource)
	}
	if (c.Catalog.TierSource == SourceS3 || c.Catalog.FoodSource == SourceS3) && c.S3.Endpoint == "" {
		return fmt.Errorf("S3_ENDPOINT is required when a catalog source is s3")
	}
	if c.Engine.SearchDefaultLimit <= 0 || c.Engine.SearchMaxLimit <= 0 {
		return fmt.Errorf("search limits must be positive")
	}
	if c.Engine.SearchDefaultLimit > c.Engine.SearchMaxLimit {
		return fmt.Errorf("SEARCH_DEFAULT_LIMIT (%d) exceeds SEARCH_MAX_LIMIT (%d)",
			c.Engine.SearchDefaultLimit, c.Engine.SearchMaxLimit)
	}
	return nil
}

func validSource(s string) bool {
	return s == SourceMongo || s == SourceS3
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
