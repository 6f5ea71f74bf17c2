package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
	UploadDir    string
	Environment  string
	LogLevel     string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnvWithDefault("PORT", "8080"),
		DatabasePath: getEnvWithDefault("DATABASE_PATH", "./meetapp.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		UploadDir:    getEnvWithDefault("UPLOAD_DIR", "./tmp/uploads"),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlHours, err := strconv.Atoi(getEnvWithDefault("TOKEN_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer")
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
