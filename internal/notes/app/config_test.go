package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, k := range []string{
		"PORT", "FRONTEND_URL", "ENV", "JWT_SECRET", "JWT_PREVIOUS_SECRETS", "JWT_ISSUER",
		"SESSION_TTL", "DATABASE_DRIVER", "DATABASE_FILE", "DATABASE_URL",
		"LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, "notes", cfg.JWTIssuer)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.SessionTTL)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "notes.db", cfg.DatabaseFile)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.JWTPreviousSecrets)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=4000\nJWT_ISSUER=from-file\nJWT_PREVIOUS_SECRETS=a, b ,,c\nSHUTDOWN_GRACE_PERIOD=2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ENV_FILE", path)
	// godotenv never overrides variables that are already set, so clear the
	// ones the file provides and restore them afterwards.
	for _, k := range []string{"PORT", "JWT_ISSUER", "JWT_PREVIOUS_SECRETS", "SHUTDOWN_GRACE_PERIOD"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, "from-file", cfg.JWTIssuer)
	require.Equal(t, []string{"a", "b", "c"}, cfg.JWTPreviousSecrets)
	require.Equal(t, 2*time.Minute, cfg.ShutdownGracePeriod)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:           3000,
		Env:            EnvDevelopment,
		DatabaseDriver: DriverSQLite,
		DatabaseFile:   "notes.db",
	}
	secret := strings.Repeat("x", jwtx.MinSecretSize)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"development without secret", func(c *Config) {}, ""},
		{"production without secret", func(c *Config) { c.Env = EnvProduction }, "JWT_SECRET is required"},
		{"production with secret", func(c *Config) { c.Env = EnvProduction; c.JWTSecret = secret }, ""},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "at least 32 bytes"},
		{"unknown env", func(c *Config) { c.Env = "staging" }, "ENV must be"},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres }, "DATABASE_URL is required"},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }, "DATABASE_DRIVER must be"},
		{"bad port", func(c *Config) { c.Port = 0 }, "PORT out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewWiresApplication(t *testing.T) {
	cfg := Config{
		Port:                3000,
		FrontendURL:         "http://localhost:5173",
		Env:                 EnvDevelopment,
		JWTIssuer:           "notes-test",
		SessionTTL:          time.Hour,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(t.TempDir(), "notes.db"),
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
	}

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, BuildVersion, body["version"])
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(context.Background(), Config{Env: EnvProduction, Port: 3000, DatabaseDriver: DriverSQLite, DatabaseFile: "x.db"})
	require.ErrorContains(t, err, "invalid configuration")
}
