package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port string

	// MongoDB
	MongoURI    string
	MongoDbName string

	// Redis (only used by the MOCK_SERVICES email sink)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Email
	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	AdminEmail   string

	// App Defaults
	AppName string
}

// MailConfigured reports whether enquiry notification emails can be sent.
// Both a sender identity and an admin recipient are needed; without either,
// mail dispatch is skipped entirely.
func (c *Config) MailConfigured() bool {
	return c.MailUser != "" && c.AdminEmail != ""
}

// Load configuration from environment variables.
// A missing MONGODB_URI or missing mail credentials are not errors here: the
// caller is expected to warn and keep running with degraded functionality.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	var err error

	cfg.Port = getEnv("PORT", "5000")
	cfg.MongoURI = getEnv("MONGODB_URI", "")
	cfg.MongoDbName = getEnv("MONGO_DB_NAME", "wanderlust")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.MailHost = getEnv("MAIL_HOST", "smtp.gmail.com")
	cfg.MailUser = getEnv("MAIL_USER", "")
	cfg.MailPassword = getEnv("MAIL_PASSWORD", "")
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.AppName = getEnv("APP_NAME", "Wanderlust India")

	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.MailPort, err = strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT: %w", err)
	}

	return cfg, nil
}
