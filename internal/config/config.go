package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "postgres://localhost:5432/portfolio?sslmode=disable"

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; the service boots with no environment at all.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string

	// Cross-origin access. A single "*" entry allows every origin.
	CORSOrigins []string

	// Maximum POST /api/status requests per second; 0 disables limiting.
	WriteRateLimit int

	DB DBConfig
}

// DBConfig describes the single database dependency.
type DBConfig struct {
	URL  string
	Name string // overrides the database named in URL when non-empty

	// ConnectTimeout bounds dialing and the liveness probe at start.
	ConnectTimeout time.Duration
	// OperationTimeout bounds every query issued while serving requests.
	OperationTimeout time.Duration

	MaxConns int32
	MinConns int32
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8001"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		WriteRateLimit: getInt("WRITE_RATE_LIMIT", 20),

		DB: DBConfig{
			URL:              getEnv("DATABASE_URL", getEnv("MONGO_URL", defaultDatabaseURL)),
			Name:             getEnv("DB_NAME", ""),
			ConnectTimeout:   getDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
			OperationTimeout: getDuration("DB_OPERATION_TIMEOUT", 5*time.Second),
			MaxConns:         int32(getInt("DB_MAX_CONNS", 10)),
			MinConns:         int32(getInt("DB_MIN_CONNS", 0)),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	timeouts := map[string]time.Duration{
		"READ_TIMEOUT":         c.ReadTimeout,
		"WRITE_TIMEOUT":        c.WriteTimeout,
		"SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
		"DB_CONNECT_TIMEOUT":   c.DB.ConnectTimeout,
		"DB_OPERATION_TIMEOUT": c.DB.OperationTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.WriteRateLimit < 0 {
		return fmt.Errorf("WRITE_RATE_LIMIT must not be negative, got %d", c.WriteRateLimit)
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DB.MaxConns)
	}
	if c.DB.MinConns < 0 || c.DB.MinConns > c.DB.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, got %d", c.DB.MinConns)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

// splitList turns "a, b,,c" into [a b c]. An empty result falls back to "*".
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
