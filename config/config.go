package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrNotionAPIKeyMissing     = errors.New("Notion API key is not configured")
	ErrNotionDatabaseIDMissing = errors.New("Notion database ID is not configured")
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	LogFile  string // optional second log sink next to stdout
	// Notion (record store) configuration
	NotionAPIKey     string
	NotionDatabaseID string
	// HTTP surface
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	SwaggerEnabled     bool
	ShutdownTimeout    time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is only present for local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "5001"),
		GinMode:  getEnv("GIN_MODE", ""),
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		LogFile:  getEnv("LOG_FILE", ""),

		NotionAPIKey:     strings.TrimSpace(getEnv("NOTION_API_KEY", "")),
		NotionDatabaseID: strings.TrimSpace(getEnv("NOTION_DATABASE_ID", "")),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
		ShutdownTimeout:    time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	// Missing Notion settings never stop the process; /health reports them instead.
	if cfg.NotionAPIKey == "" {
		log.Println("WARNING: NOTION_API_KEY is missing. RSVP submissions will fail.")
	}
	if cfg.NotionDatabaseID == "" {
		log.Println("WARNING: NOTION_DATABASE_ID is missing. RSVP submissions will fail.")
	}

	return cfg, nil
}

// NotionConfigured returns the first missing Notion setting, or nil.
func (c *Config) NotionConfigured() error {
	if c.NotionAPIKey == "" {
		return ErrNotionAPIKeyMissing
	}
	if c.NotionDatabaseID == "" {
		return ErrNotionDatabaseIDMissing
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
