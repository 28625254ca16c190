package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
database:
  path: /var/lib/techarena/data.db
log:
  level: debug
cors:
  allowedOrigins:
    - https://dashboard.example.com
session:
  ttl: 12h
seed:
  enabled: false
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/techarena/data.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Seed.Enabled)
	// Unset keys keep their defaults.
	assert.Equal(t, "techarena_session", cfg.Session.Cookie)
	assert.Equal(t, "password123", cfg.Seed.DefaultPassword)
}

func TestLoadFromPathEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("TECHARENA_PORT", "7070")
	t.Setenv("TECHARENA_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TECHARENA_SESSION_TTL", "2h")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
}

func TestLoadFromPathInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad log level", "log:\n  level: verbose\n"},
		{"non-numeric port", "server:\n  port: http\n"},
		{"short password", "seed:\n  defaultPassword: abc\n"},
		{"malformed yaml", "server: [port\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPathBadEnvDuration(t *testing.T) {
	t.Setenv("TECHARENA_SESSION_TTL", "soon")
	_, err := LoadFromPath(writeConfig(t, ""))
	assert.ErrorContains(t, err, "TECHARENA_SESSION_TTL")
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
