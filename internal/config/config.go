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
	// Common
	Environment string
	LogLevel    string

	Backtest BacktestConfig
	API      APIConfig
}

// BacktestConfig holds the CLI backtest run configuration
type BacktestConfig struct {
	DataFile        string
	StartingBalance float64

	// Risk parameters. ATRStopMultiplier > 0 switches stops from fixed
	// percentages to ATR multiples.
	StopLoss          float64
	TakeProfit        float64
	AllowShort        bool
	ATRStopMultiplier float64
	ATRTakeMultiplier float64
	ATRPeriod         int

	// Strategy selection: "ma_crossover" or "volatility"
	Strategy    string
	ShortWindow int
	LongWindow  int
	Window      int
	BandK       float64
}

// APIConfig holds REST API configuration
type APIConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory or parent directories
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Backtest: BacktestConfig{
			DataFile:          getEnv("BACKTEST_DATA_FILE", "candles.csv"),
			StartingBalance:   getEnvAsFloat("BACKTEST_STARTING_BALANCE", 10000),
			StopLoss:          getEnvAsFloat("BACKTEST_STOP_LOSS", 0.05),
			TakeProfit:        getEnvAsFloat("BACKTEST_TAKE_PROFIT", 0.10),
			AllowShort:        getEnvAsBool("BACKTEST_ALLOW_SHORT", false),
			ATRStopMultiplier: getEnvAsFloat("BACKTEST_ATR_STOP_MULTIPLIER", 0),
			ATRTakeMultiplier: getEnvAsFloat("BACKTEST_ATR_TAKE_MULTIPLIER", 0),
			ATRPeriod:         getEnvAsInt("BACKTEST_ATR_PERIOD", 14),
			Strategy:          getEnv("BACKTEST_STRATEGY", "ma_crossover"),
			ShortWindow:       getEnvAsInt("BACKTEST_SHORT_WINDOW", 10),
			LongWindow:        getEnvAsInt("BACKTEST_LONG_WINDOW", 30),
			Window:            getEnvAsInt("BACKTEST_WINDOW", 20),
			BandK:             getEnvAsFloat("BACKTEST_BAND_K", 2.0),
		},
		API: APIConfig{
			Port:            getEnvAsInt("API_PORT", 8080),
			ShutdownTimeout: getEnvAsDuration("API_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the structural constraints the services rely on
func (c *Config) Validate() error {
	switch c.Backtest.Strategy {
	case "ma_crossover", "volatility":
	default:
		return fmt.Errorf("BACKTEST_STRATEGY must be ma_crossover or volatility, got %q", c.Backtest.Strategy)
	}
	if c.Backtest.StartingBalance <= 0 {
		return fmt.Errorf("BACKTEST_STARTING_BALANCE must be positive")
	}
	if c.Backtest.ATRStopMultiplier > 0 && c.Backtest.ATRPeriod < 1 {
		return fmt.Errorf("BACKTEST_ATR_PERIOD must be at least 1 in ATR stop mode")
	}
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("API_PORT must be a valid port number")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
