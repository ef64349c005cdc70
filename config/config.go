package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"bethouse/database"
)

// Config holds all application configuration
type Config struct {
	// HTTP configuration
	HTTPPort       int
	RequestTimeout time.Duration

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated)

	// Observability configuration
	OTelEnabled              bool
	OTelServiceName          string
	OTelExporterType         string // "console", "otlp" or "none"
	OTelOTLPEndpoint         string
	OTelExportIntervalMillis int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		HTTPPort:       8080,
		RequestTimeout: 10 * time.Second,

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		NATSServers: getEnvWithDefault("NATS_SERVERS", "nats://nats:4222"),

		OTelEnabled:              os.Getenv("OTEL_ENABLED") == "true",
		OTelServiceName:          getEnvWithDefault("OTEL_SERVICE_NAME", "bethouse"),
		OTelExporterType:         getEnvWithDefault("OTEL_EXPORTER_TYPE", "console"),
		OTelOTLPEndpoint:         getEnvWithDefault("OTEL_OTLP_ENDPOINT", "localhost:4317"),
		OTelExportIntervalMillis: 60000,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_PORT %q: %w", port, err)
		}
		config.HTTPPort = parsed
	}

	if timeout := os.Getenv("REQUEST_TIMEOUT_SECONDS"); timeout != "" {
		parsed, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS %q: %w", timeout, err)
		}
		config.RequestTimeout = time.Duration(parsed) * time.Second
	}

	if interval := os.Getenv("OTEL_EXPORT_INTERVAL_MS"); interval != "" {
		parsed, err := strconv.Atoi(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid OTEL_EXPORT_INTERVAL_MS %q: %w", interval, err)
		}
		config.OTelExportIntervalMillis = parsed
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:    "test",
		HTTPPort:       8080,
		RequestTimeout: 10 * time.Second,
	}
}
