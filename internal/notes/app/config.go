package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port                int           // HTTP server port (default: 3000)
	FrontendURL         string        // Allowed CORS origin (default: http://localhost:5173)
	Env                 string        // Environment (development, production) (default: development)
	JWTSecret           string        // HS256 secret, required in production
	JWTPreviousSecrets  []string      // Optional: retired secrets still accepted for verification
	JWTIssuer           string        // Issuer claim for session tokens (default: notes)
	SessionTTL          time.Duration // Session token and cookie lifetime (default: 15 days)
	DatabaseDriver      string        // sqlite or postgres (default: sqlite)
	DatabaseFile        string        // SQLite database file (default: notes.db)
	DatabaseURL         string        // PostgreSQL connection string
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file
// (ENV_FILE, default ".env") is loaded first when present; variables already
// set in the process win over the file.
func LoadConfig() Config {
	envFile := getEnvOrDefault("ENV_FILE", ".env")
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}

	return Config{
		Port:                getEnvIntOrDefault("PORT", 3000),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		Env:                 strings.ToLower(getEnvOrDefault("ENV", EnvDevelopment)),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTPreviousSecrets:  splitList(os.Getenv("JWT_PREVIOUS_SECRETS")),
		JWTIssuer:           getEnvOrDefault("JWT_ISSUER", "notes"),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		DatabaseDriver:      strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "notes.db"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// IsProduction reports whether the service runs behind a cross-site frontend.
func (c Config) IsProduction() bool { return c.Env == EnvProduction }

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env))
	}

	if c.IsProduction() && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretSize {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretSize))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.DatabaseDriver))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
