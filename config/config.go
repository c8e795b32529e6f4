// Package config reads the settings of the command line from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Backends known to the storage package.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds application configuration
type Config struct {
	StorePath string // HOLDEM_STORE
	Backend   string // HOLDEM_BACKEND: json, sqlite or memory
	Currency  string // HOLDEM_CURRENCY: ISO 4217 code used to display amounts
	LogLevel  string // HOLDEM_LOG_LEVEL
	LogPretty bool   // HOLDEM_LOG_PRETTY
}

// Load reads configuration from environment variables, after loading the
// given dotenv files (".env" by default) when they exist.
// Variables already set in the environment take precedence over the files.
// The result is not validated: callers apply their own overrides first, then
// call Validate.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("cannot read %q: %w", f, err)
		}
	}

	cfg := &Config{
		Backend:   strings.ToLower(getEnv("HOLDEM_BACKEND", BackendJSON)),
		Currency:  strings.ToUpper(getEnv("HOLDEM_CURRENCY", "KRW")),
		LogLevel:  getEnv("HOLDEM_LOG_LEVEL", "warn"),
		LogPretty: getEnvAsBool("HOLDEM_LOG_PRETTY", true),
	}
	cfg.StorePath = getEnv("HOLDEM_STORE", DefaultStorePath(cfg.Backend))
	return cfg, nil
}

// DefaultStorePath returns the store location used when none is configured.
func DefaultStorePath(backend string) string {
	if backend == BackendSQLite {
		return "holdem.db"
	}
	return "holdem.json"
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("HOLDEM_BACKEND %q is not one of json, sqlite, memory", c.Backend)
	}
	if c.Backend != BackendMemory && c.StorePath == "" {
		return fmt.Errorf("HOLDEM_STORE is required")
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("HOLDEM_CURRENCY %q is not a known currency code", c.Currency)
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
