package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelFor(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL")))
}

// SetLevel changes the level of the package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Environment name (development, production, ...)
	Environment string `json:"environment"`

	// Report API configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver          string `json:"db_driver"`
	DBPath            string `json:"db_path"`
	DBHost            string `json:"db_host"`
	DBPort            string `json:"db_port"`
	DBName            string `json:"db_name"`
	DBUser            string `json:"db_user"`
	DBPassword        string `json:"db_password"`
	DBSSLMode         string `json:"db_sslmode"`
	DBConnectAttempts int    `json:"db_connect_attempts"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Restaurant behaviour
	LowStockThreshold int `json:"low_stock_threshold"`
	RecentOrdersLimit int `json:"recent_orders_limit"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, LowStockThreshold: %d, RecentOrdersLimit: %d}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBPath, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.LogLevel, c.LowStockThreshold, c.RecentOrdersLimit)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if a numeric variable is malformed or the driver is unknown
func LoadConfig() (*Config, error) {
	log.Debug("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}

	threshold, err := strconv.Atoi(GetEnvWithDefault("LOW_STOCK_THRESHOLD", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOW_STOCK_THRESHOLD: %w", err)
	}

	limit, err := strconv.Atoi(GetEnvWithDefault("RECENT_ORDERS_LIMIT", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECENT_ORDERS_LIMIT: %w", err)
	}
	if limit <= 0 {
		return nil, errors.New("RECENT_ORDERS_LIMIT must be positive")
	}

	config := &Config{
		Environment:       GetEnvWithDefault("APP_ENV", "local"),
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", "127.0.0.1"),
		DBDriver:          driver,
		DBPath:            GetEnvWithDefault("DB_PATH", "restaurant.db"),
		DBHost:            GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:            GetEnvWithDefault("DB_PORT", "5432"),
		DBName:            GetEnvWithDefault("DB_NAME", "restaurant"),
		DBUser:            GetEnvWithDefault("DB_USER", "restaurant"),
		DBPassword:        GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:         GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBConnectAttempts: GetEnvAsType("DB_CONNECT_ATTEMPTS", 1),
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "warn"),
		LowStockThreshold: threshold,
		RecentOrdersLimit: limit,
	}
	log.Debugf("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelFor maps the environment name and the requested level onto a logrus level.
// development and production override the requested level.
func LevelFor(environment, level string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.WarnLevel
	}
	return parsed
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
