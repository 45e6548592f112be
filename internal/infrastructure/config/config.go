package config

import (
	"os"
	"strconv"
)

// PlanConfig is the installment schedule policy.
type PlanConfig struct {
	TermMonths    int
	AnnualRateBps int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
}

type Config struct {
	Plan        PlanConfig
	Log         LogConfig
	ServiceName string
}

func Load() Config {
	return Config{
		Plan: PlanConfig{
			TermMonths:    getEnvInt("PLAN_TERM_MONTHS", 12),
			AnnualRateBps: getEnvInt("PLAN_ANNUAL_RATE_BPS", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		ServiceName: "micuenta",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
