package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// MongoDB configuration
	MongoURI         string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase    string `envconfig:"MONGO_DATABASE" default:"tastebase"`
	MongoMaxPoolSize uint64 `envconfig:"MONGO_MAX_POOL_SIZE" default:"25"`

	// S3 image storage
	AWSRegion       string `envconfig:"AWS_REGION" default:"us-east-1"`
	S3Bucket        string `envconfig:"S3_BUCKET" default:"tastebase-recipe-images"`
	S3Endpoint      string `envconfig:"S3_ENDPOINT"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`

	// CORS
	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// LoadConfig reads configuration from the environment. A local .env file
// is loaded first when one exists so development setups need no exports.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
