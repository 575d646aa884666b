package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration.
type Config struct {
	Workers     int    // 0 means hardware concurrency
	Items       int    // elements per round
	Rounds      int    // bursts submitted to the shared pool
	MetricsAddr string // empty disables the metrics server
	LogLevel    string
	LogFormat   string // "text" or "json"
}

// LoadConfig reads envFile into the environment when it exists, then builds the
// configuration from RANGEBENCH_* variables. Only malformed values are rejected here;
// range checks belong to Validate, once flag overrides have been applied.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		MetricsAddr: getEnv("RANGEBENCH_METRICS_ADDR", ""),
		LogLevel:    getEnv("RANGEBENCH_LOG_LEVEL", "info"),
		LogFormat:   getEnv("RANGEBENCH_LOG_FORMAT", "text"),
	}

	var err error
	if cfg.Workers, err = getEnvInt("RANGEBENCH_WORKERS", 0); err != nil {
		return nil, err
	}
	if cfg.Items, err = getEnvInt("RANGEBENCH_ITEMS", 100_000); err != nil {
		return nil, err
	}
	if cfg.Rounds, err = getEnvInt("RANGEBENCH_ROUNDS", 4); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Items < 0 {
		return fmt.Errorf("items must not be negative, got %d", c.Items)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
