package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	LogLevel     string
	DatabaseFile string

	// S3 (captured scan images)
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Verification
	VerificationTimeout time.Duration
	CatalogFile         string

	// History
	HistoryLimit int

	// Upload limits
	MaxImageSize int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabaseFile:      getEnv("DATABASE_FILE", "data/medscan.db"),
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "scan-images"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		CatalogFile:       getEnv("CATALOG_FILE", ""),
		MaxImageSize:      10 * 1024 * 1024,
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	timeout, err := time.ParseDuration(getEnv("VERIFICATION_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid VERIFICATION_TIMEOUT: %w", err)
	}
	cfg.VerificationTimeout = timeout

	historyLimit, err := strconv.Atoi(getEnv("HISTORY_LIMIT", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_LIMIT: %w", err)
	}
	cfg.HistoryLimit = historyLimit

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
