package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret       string
	APIKey          string
	SuperAdminEmail string

	FirebaseCredentialsJSON string
	FirebaseProjectID       string

	WhatsAppCountryCode string
	StoreTimezone       string

	AnalyticsEndpoint string
	SessionTTL        time.Duration
	SessionCapacity   int
}

// Load reads the process environment, after applying an optional .env file.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "menu"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		APIKey:          getEnv("COST_API_KEY", ""),
		SuperAdminEmail: getEnv("SUPER_ADMIN_EMAIL", ""),

		FirebaseCredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),

		WhatsAppCountryCode: getEnv("WHATSAPP_COUNTRY_CODE", "55"),
		StoreTimezone:       getEnv("STORE_TIMEZONE", "America/Sao_Paulo"),

		AnalyticsEndpoint: getEnv("ANALYTICS_ENDPOINT", ""),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	capacity, err := strconv.Atoi(getEnv("SESSION_CAPACITY", "10000"))
	if err != nil || capacity <= 0 {
		return nil, fmt.Errorf("invalid SESSION_CAPACITY %q", os.Getenv("SESSION_CAPACITY"))
	}
	cfg.SessionCapacity = capacity

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a postgres DSN built from the DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location resolves StoreTimezone, falling back to UTC when the zone database lacks it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StoreTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
