package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FILE", "NOTION_API_KEY", "NOTION_DATABASE_ID",
		"CORS_ALLOWED_ORIGINS", "METRICS_ENABLED", "SWAGGER_ENABLED", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.ErrorIs(t, cfg.NotionConfigured(), ErrNotionAPIKeyMissing)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NOTION_API_KEY", " secret_abc ")
	t.Setenv("NOTION_DATABASE_ID", "db-123")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://rsvp.example.com/, http://localhost:3000")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "secret_abc", cfg.NotionAPIKey)
	assert.Equal(t, "db-123", cfg.NotionDatabaseID)
	assert.Equal(t, []string{"https://rsvp.example.com", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.NotionConfigured())
}

func TestNotionConfigured(t *testing.T) {
	cfg := &Config{NotionAPIKey: "secret"}
	assert.ErrorIs(t, cfg.NotionConfigured(), ErrNotionDatabaseIDMissing)

	cfg.NotionDatabaseID = "db"
	assert.NoError(t, cfg.NotionConfigured())
}
