package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REQUEST_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=stockpulse
//	POSTGRES_SSLMODE=disable
//	MORNINGSTAR_API_KEY=...
//	MORNINGSTAR_TIMEOUT=10s
//	FEATURE_GET_STOCK_PERFORMANCE_ID=true
type Config struct {
	Server      ServerConfig      // HTTP server configuration
	Postgres    PostgresConfig    // PostgreSQL connection settings (stock directory)
	Morningstar MorningstarConfig // Upstream data provider
	Features    FeatureConfig     // Feature flags
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout     time.Duration // Deadline attached to every request context
	RateLimitPerMinute int           // Requests allowed per client IP per minute
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// DSN builds the postgres:// connection string for database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// MorningstarConfig configures the outbound provider client.
//
// Fields:
//   - APIKey: sent as the ApiKey header; may be empty for public endpoints.
//   - BaseURL: root of the report endpoints (valuation, operating performance, returns).
//   - QuotesBaseURL: root of the realtime quotes endpoint.
//   - UserAgent: sent as the User-Agent header.
//   - Timeout: per-request timeout of the HTTP client.
type MorningstarConfig struct {
	APIKey        string
	BaseURL       string
	QuotesBaseURL string
	UserAgent     string
	Timeout       time.Duration
}

// FeatureConfig toggles optional endpoints.
type FeatureConfig struct {
	GetStockPerformanceID bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "stockpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("MORNINGSTAR_API_KEY", "")
	viper.SetDefault("MORNINGSTAR_BASE_URL", "https://api-global.morningstar.com/sal-service/v1/stock")
	viper.SetDefault("MORNINGSTAR_QUOTES_BASE_URL", "https://www.morningstar.com/api/v2")
	viper.SetDefault("MORNINGSTAR_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/89.0.142.86 Safari/537.36")
	viper.SetDefault("MORNINGSTAR_TIMEOUT", "10s")

	viper.SetDefault("FEATURE_GET_STOCK_PERFORMANCE_ID", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Morningstar: MorningstarConfig{
			APIKey:        viper.GetString("MORNINGSTAR_API_KEY"),
			BaseURL:       viper.GetString("MORNINGSTAR_BASE_URL"),
			QuotesBaseURL: viper.GetString("MORNINGSTAR_QUOTES_BASE_URL"),
			UserAgent:     viper.GetString("MORNINGSTAR_USER_AGENT"),
			Timeout:       viper.GetDuration("MORNINGSTAR_TIMEOUT"),
		},
		Features: FeatureConfig{
			GetStockPerformanceID: viper.GetBool("FEATURE_GET_STOCK_PERFORMANCE_ID"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

// missingKeys lists the environment keys whose values are required but empty in cfg.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if cfg.Morningstar.BaseURL == "" {
		missing = append(missing, "MORNINGSTAR_BASE_URL")
	}
	if cfg.Morningstar.QuotesBaseURL == "" {
		missing = append(missing, "MORNINGSTAR_QUOTES_BASE_URL")
	}
	if cfg.Morningstar.Timeout <= 0 {
		missing = append(missing, "MORNINGSTAR_TIMEOUT")
	}

	return missing
}
