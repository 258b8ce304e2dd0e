package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("USERSDESK_DATABASE__URL", "postgres://app@localhost:5432/app?sslmode=disable")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, time.Hour, cfg.Database.MaxConnLifetime)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("USERSDESK_PRIMARY__ENV", "production")
	t.Setenv("USERSDESK_SERVER__PORT", "9090")
	t.Setenv("USERSDESK_SERVER__READ_TIMEOUT", "5")
	t.Setenv("USERSDESK_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("USERSDESK_DATABASE__URL", "postgres://app@db:5432/app")
	t.Setenv("USERSDESK_DATABASE__MAX_CONN_IDLE_TIME", "90s")
	t.Setenv("USERSDESK_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "postgres://app@db:5432/app", cfg.Database.URL)
	assert.Equal(t, 90*time.Second, cfg.Database.MaxConnIdleTime)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_SplitsLists(t *testing.T) {
	t.Setenv("USERSDESK_DATABASE__URL", "postgres://app@localhost/app")
	t.Setenv("USERSDESK_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("USERSDESK_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database,search")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"database", "search"}, cfg.Observability.HealthChecks.Checks)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("USERSDESK_DATABASE__URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("USERSDESK_DATABASE__URL", "postgres://app@localhost/app")
	t.Setenv("USERSDESK_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("USERSDESK_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("USERSDESK_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}
