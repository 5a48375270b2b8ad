package config

import (
	"os"
	"strconv"
)

type Config struct {
	Logging LoggingConfig
	Mint    MintConfig
	Metrics MetricsConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

type MintConfig struct {
	Count     int
	PerSecond int
	Burst     int
}

type MetricsConfig struct {
	Enabled bool
	Port    int
}

func Load() (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Mint: MintConfig{
			Count:     getEnvInt("MINT_COUNT", 100),
			PerSecond: getEnvInt("MINT_PER_SECOND", 20),
			Burst:     getEnvInt("MINT_BURST", 5),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", false),
			Port:    getEnvInt("METRICS_PORT", 9100),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
