package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: t.Parallel() is intentionally omitted in this package.
// These tests share process-global environment variables; t.Setenv in
// TestLoad_EnvOverride would race with any concurrent reader.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, "teamsync-backend", cfg.Telemetry.ServiceName)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "admin@teamsync.local", cfg.Bootstrap.AdminEmail)
	assert.Equal(t, "System Admin", cfg.Bootstrap.AdminName)
	assert.Empty(t, cfg.Bootstrap.AdminPassword)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TEAMSYNC_SERVER_PORT", "9090")
	t.Setenv("TEAMSYNC_DATABASE_HOST", "my-db")
	t.Setenv("TEAMSYNC_BOOTSTRAP_ADMIN_EMAIL", "root@example.com")
	t.Setenv("TEAMSYNC_BOOTSTRAP_ADMIN_PASSWORD", "changeme123")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "my-db", cfg.Database.Host)
	assert.Equal(t, "root@example.com", cfg.Bootstrap.AdminEmail)
	assert.Equal(t, "changeme123", cfg.Bootstrap.AdminPassword)
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvIsolation(t *testing.T) {
	// A previous test's env vars must not leak — t.Setenv auto-cleans.
	require.Empty(t, os.Getenv("TEAMSYNC_SERVER_PORT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
