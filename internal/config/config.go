package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultEnv           = "development"
	defaultDBPath        = "./dev.db"
	defaultPort          = "8080"
	defaultMigrationsDir = "migrations"
	defaultLogLevel      = "info"
	defaultHistoryLimit  = 10
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env           string
	Port          string
	DBPath        string
	MigrationsDir string
	LogLevel      string
	CORSOrigins   []string
	HistoryLimit  int
}

// Load reads environment variables and returns a populated Config.
func Load() (Config, error) {
	// Best-effort: production injects real env vars.
	_ = godotenv.Load()

	cfg := Config{
		Env:           getEnv("APP_ENV", defaultEnv),
		Port:          getEnv("PORT", defaultPort),
		DBPath:        getEnv("DB_PATH", defaultDBPath),
		MigrationsDir: getEnv("MIGRATIONS_DIR", defaultMigrationsDir),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		HistoryLimit:  defaultHistoryLimit,
	}

	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("HISTORY_LIMIT must be a positive integer, got %q", v)
		}
		cfg.HistoryLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that have no usable fallback.
func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}

func (c Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
