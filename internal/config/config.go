package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	Session  SessionConfig
	Redis    RedisConfig
	Log      LogConfig
	Seed     SeedConfig

	// Warnings lists values that could not be parsed and fell back to their default
	Warnings []string
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxIdleConns int
	MaxOpenConns int
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	TokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// SessionConfig selects where issued tokens are tracked.
// Store is "database" or "redis".
type SessionConfig struct {
	Store         string
	SweepInterval time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig holds the bootstrap administrator created by the seed command
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	p := &envParser{}
	config := &Config{
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "mysql"),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "3306"),
			User:         getEnv("DB_USER", "root"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "patient_transport"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxIdleConns: p.parseInt(getEnv("DB_MAX_IDLE_CONNS", "10"), 10),
			MaxOpenConns: p.parseInt(getEnv("DB_MAX_OPEN_CONNS", "100"), 100),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-access-secret-key"),
			Issuer:      getEnv("JWT_ISSUER", "patient-transport-backend"),
			TokenExpiry: p.parseDuration(getEnv("TOKEN_EXPIRY", "8h"), 8*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Session: SessionConfig{
			Store:         getEnv("SESSION_STORE", "database"),
			SweepInterval: p.parseDuration(getEnv("SESSION_SWEEP_INTERVAL", "10m"), 10*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       p.parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@transport.local"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Warnings: p.warnings,
	}

	return config
}

// Validate reports settings that would make the server unusable
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Session.Store {
	case "database", "redis":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.Session.Store)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWT.TokenExpiry <= 0 {
		return fmt.Errorf("TOKEN_EXPIRY must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envParser collects values that fell back to their default
type envParser struct {
	warnings []string
}

func (p *envParser) parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		p.warnings = append(p.warnings, fmt.Sprintf("invalid duration %q, using %s", s, fallback))
		return fallback
	}
	return duration
}

func (p *envParser) parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		p.warnings = append(p.warnings, fmt.Sprintf("invalid integer %q, using %d", s, fallback))
		return fallback
	}
	return n
}
