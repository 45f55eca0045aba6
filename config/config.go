// Package config loads server configuration from the environment, with a
// .env file as an optional local override.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full server configuration.
type Config struct {
	Addr            string
	DBPath          string
	LogFilePath     string
	LogLevel        string
	SeedDemoData    bool
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win because godotenv
// never overrides them.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:            getEnvString("BACKOFFICE_ADDR", ":8080"),
		DBPath:          getEnvString("BACKOFFICE_DB", ":memory:"),
		LogFilePath:     getEnvString("BACKOFFICE_LOG_FILE", ""),
		LogLevel:        getEnvString("BACKOFFICE_LOG_LEVEL", "info"),
		SeedDemoData:    getEnvBool("BACKOFFICE_SEED", true),
		ShutdownTimeout: getEnvDuration("BACKOFFICE_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
