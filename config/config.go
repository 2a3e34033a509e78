// Package config loads the acc defaults from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load, also passed to acc-<name> extensions.
const (
	EnvLedgerFile = "ACCRUAL_LEDGER_FILE"
	EnvRulesFile  = "ACCRUAL_RULES_FILE"
	EnvCurrency   = "ACCRUAL_CURRENCY"
	EnvVerbose    = "ACCRUAL_VERBOSE"
)

// Config represents the application configuration.
type Config struct {
	LedgerFile string // JSONL seed of transactions.
	RulesFile  string // YAML seed of interest rules.
	Currency   string // display currency.
	Verbose    bool
}

// Load loads configuration from environment variables.
// It loads the .env file of the current directory if there is one, or the given file,
// which must exist. Variables already set in the environment take precedence.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	verbose, err := parseBoolEnv(EnvVerbose, false)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
	}

	return &Config{
		LedgerFile: os.Getenv(EnvLedgerFile),
		RulesFile:  os.Getenv(EnvRulesFile),
		Currency:   getEnvOrDefault(EnvCurrency, "SGD"),
		Verbose:    verbose,
	}, nil
}

// Environ returns the configuration as environment variables, in "key=value" form.
func (c *Config) Environ() []string {
	return []string{
		EnvLedgerFile + "=" + c.LedgerFile,
		EnvRulesFile + "=" + c.RulesFile,
		EnvCurrency + "=" + c.Currency,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}
