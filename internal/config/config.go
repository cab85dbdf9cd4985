package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Market   MarketConfig
	Security SecurityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketConfig holds market data gateway configuration.
// CacheTTL is the quote freshness window; MinRequestInterval spaces outbound
// requests to the price APIs; RefreshSchedule is a cron spec for the
// background snapshot job.
type MarketConfig struct {
	CacheTTL           time.Duration
	MinRequestInterval time.Duration
	RefreshSchedule    string
	YahooBaseURL       string
	CoinGeckoBaseURL   string
	CoinGeckoAPIKey    string
}

// SecurityConfig holds the key material for encrypting sensitive settings at rest.
type SecurityConfig struct {
	// SettingsKey is a base64 fernet key used to encrypt the stored
	// market data API key. Empty disables encryption of settings.
	SettingsKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/finance_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Market: MarketConfig{
			CacheTTL:           getEnvDuration("PRICE_CACHE_TTL", 5*time.Minute),
			MinRequestInterval: getEnvDuration("PRICE_MIN_INTERVAL", 100*time.Millisecond),
			RefreshSchedule:    getEnv("PRICE_REFRESH_SCHEDULE", "@every 5m"),
			YahooBaseURL:       getEnv("YAHOO_BASE_URL", ""),
			CoinGeckoBaseURL:   getEnv("COINGECKO_BASE_URL", ""),
			CoinGeckoAPIKey:    getEnv("COINGECKO_API_KEY", ""),
		},
		Security: SecurityConfig{
			SettingsKey: getEnv("SETTINGS_ENCRYPTION_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets an environment variable as a duration, accepting either
// a bare integer in milliseconds ("5000") or a Go duration string ("5m").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
