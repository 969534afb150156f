package cli

import (
	"os"
	"strconv"

	"github.com/mcoot/cardbank/internal/factory"
)

// Config holds CLI configuration
type Config struct {
	Storage  string
	RedisURL string
	Listen   string
	Script   string
	EnvFile  string
	Output   string
	NoDelay  bool
	Verbose  bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage:  getEnvOrDefault("CARDBANK_STORAGE", factory.StorageTypeMemory),
		RedisURL: getEnvOrDefault("CARDBANK_REDIS_URL", "redis://localhost:6379"),
		Listen:   os.Getenv("CARDBANK_LISTEN"),
		Script:   getEnvOrDefault("CARDBANK_SCRIPT", "-"),
		EnvFile:  getEnvOrDefault("CARDBANK_ENV_FILE", ".env"),
		Output:   "text",
		NoDelay:  getEnvBool("CARDBANK_NO_DELAY"),
		Verbose:  false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && val
}
