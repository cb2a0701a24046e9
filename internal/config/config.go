package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlite3, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string // file path for sqlite
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Authorizer configuration
	AuthzURL      string
	AuthzClientID string

	// Generative AI configuration, AI features are disabled without a key
	GeminiAPIKey string
	GeminiModel  string

	// Snapshot feed poll interval
	SyncInterval time.Duration

	// Largest embedded document content accepted, in characters of the data URL
	MaxDocumentBytes int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := fromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase loads configuration for tools that only touch the database
func LoadDatabase() (*Config, error) {
	cfg := fromEnv()
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() *Config {
	return &Config{
		Port:              getEnv("PORT", "3000"),
		Environment:       getEnv("APP_ENV", "development"),
		DBType:            getEnv("DB_TYPE", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AuthzURL:          getEnv("AUTHZ_URL", ""),
		AuthzClientID:     getEnv("AUTHZ_CLIENT_ID", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		SyncInterval:      time.Duration(getEnvAsInt("SYNC_INTERVAL_SECONDS", 5)) * time.Second,
		MaxDocumentBytes:  getEnvAsInt("MAX_DOCUMENT_BYTES", 1048487),
	}
}

// Validate checks required fields
func (cfg *Config) Validate() error {
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}
	if cfg.AuthzURL == "" {
		return fmt.Errorf("AUTHZ_URL is required")
	}
	if cfg.AuthzClientID == "" {
		return fmt.Errorf("AUTHZ_CLIENT_ID is required")
	}
	if cfg.SyncInterval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL_SECONDS must be positive")
	}
	return nil
}

// ValidateDatabase checks the fields needed to connect to the database
func (cfg *Config) ValidateDatabase() error {
	if cfg.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if !isEmbeddedDB(cfg.DBType) && cfg.DBUser == "" {
		return fmt.Errorf("DB_USER is required for DB_TYPE %s", cfg.DBType)
	}
	return nil
}

// AIEnabled reports whether a generative AI key is configured
func (cfg *Config) AIEnabled() bool {
	return cfg.GeminiAPIKey != ""
}

func isEmbeddedDB(dbType string) bool {
	return dbType == "sqlite" || dbType == "sqlite3"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
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
