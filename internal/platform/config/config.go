package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string

	// PublicBaseURL is the origin public share links are built on.
	PublicBaseURL   string `mapstructure:"PUBLIC_BASE_URL"`
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`

	// Upstream FX provider
	FXAPIBaseURL    string        `mapstructure:"FX_API_BASE_URL"`
	FXAPITimeout    time.Duration `mapstructure:"FX_API_TIMEOUT"`
	FXAPIRetryCount int           `mapstructure:"FX_API_RETRY_COUNT"`

	// RatesRefreshCron is a 6-field (with seconds) cron spec; empty disables the job.
	RatesRefreshCron string `mapstructure:"RATES_REFRESH_CRON"`
	// RateLimit uses the limiter format, e.g. "60-M".
	RateLimit string `mapstructure:"RATE_LIMIT"`

	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFile       string `mapstructure:"LOG_FILE"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	v.SetDefault("DEFAULT_CURRENCY", "EUR")
	v.SetDefault("FX_API_BASE_URL", "https://open.er-api.com")
	v.SetDefault("FX_API_TIMEOUT", "10s")
	v.SetDefault("FX_API_RETRY_COUNT", 0)
	v.SetDefault("RATES_REFRESH_CRON", "0 0 */6 * * *")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.PublicBaseURL = strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/")
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:3000"
		log.Printf("Warning: PUBLIC_BASE_URL not set. Defaulting to %s.\n", cfg.PublicBaseURL)
	}

	cfg.DefaultCurrency = domain.NormalizeCurrencyCode(v.GetString("DEFAULT_CURRENCY"))
	if !domain.IsSupportedCurrency(cfg.DefaultCurrency) {
		log.Printf("Warning: Invalid value for DEFAULT_CURRENCY ('%s'). Defaulting to EUR.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "EUR"
	}

	fxTimeoutStr := v.GetString("FX_API_TIMEOUT")
	fxTimeout, err := time.ParseDuration(fxTimeoutStr)
	if err != nil || fxTimeout <= 0 {
		fxTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for FX_API_TIMEOUT ('%s'). Defaulting to %s.\n", fxTimeoutStr, fxTimeout.String())
	}

	cfg.FXAPIRetryCount = v.GetInt("FX_API_RETRY_COUNT")
	if cfg.FXAPIRetryCount < 0 || cfg.FXAPIRetryCount > 5 {
		log.Printf("Warning: FX_API_RETRY_COUNT (%d) out of range [0,5]. Defaulting to 0.\n", cfg.FXAPIRetryCount)
		cfg.FXAPIRetryCount = 0
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.FXAPIBaseURL = v.GetString("FX_API_BASE_URL")
	cfg.FXAPITimeout = fxTimeout
	cfg.RatesRefreshCron = v.GetString("RATES_REFRESH_CRON")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.LogFile = v.GetString("LOG_FILE")

	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics events will not be sent.")
	}

	return cfg, nil
}
