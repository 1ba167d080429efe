package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// EstateName labels log output when several estates run their own
	// instance against a shared log pipeline
	EstateName string
}

// PayrollConfig holds payroll-run defaults
type PayrollConfig struct {
	// WorkerLimit bounds concurrent employee computations per batch run
	WorkerLimit int
	// EndMonthSplit is the default share of net pay paid at end of month
	EndMonthSplit decimal.Decimal
	// ResyncWindowDays is how many days into a month the previous month's
	// payroll keeps being recomputed automatically
	ResyncWindowDays int
}

func Load() (*Config, error) {
	// A missing .env is fine in containerized deploys where everything
	// arrives through the environment
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ladang_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EstateName: getEnv("ESTATE_NAME", "default"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Payroll configuration
	workerLimit, err := strconv.Atoi(getEnv("PAYROLL_WORKER_LIMIT", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKER_LIMIT: %w", err)
	}

	endMonthSplit, err := decimal.NewFromString(getEnv("PAYROLL_END_MONTH_SPLIT", "0.5"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_END_MONTH_SPLIT: %w", err)
	}

	resyncWindowDays, err := strconv.Atoi(getEnv("PAYROLL_RESYNC_WINDOW_DAYS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RESYNC_WINDOW_DAYS: %w", err)
	}

	config.Payroll = PayrollConfig{
		WorkerLimit:      workerLimit,
		EndMonthSplit:    endMonthSplit,
		ResyncWindowDays: resyncWindowDays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.WorkerLimit < 1 {
		return fmt.Errorf("PAYROLL_WORKER_LIMIT must be at least 1")
	}
	if c.Payroll.EndMonthSplit.IsNegative() || c.Payroll.EndMonthSplit.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_END_MONTH_SPLIT must be between 0 and 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
