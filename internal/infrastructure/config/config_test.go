package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JWatus/MiCuentaApp/internal/infrastructure/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.Load()

		assert.Equal(t, 12, cfg.Plan.TermMonths)
		assert.Equal(t, 0, cfg.Plan.AnnualRateBps)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "micuenta", cfg.ServiceName)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PLAN_TERM_MONTHS", "24")
		t.Setenv("PLAN_ANNUAL_RATE_BPS", "450")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")

		cfg := config.Load()

		assert.Equal(t, 24, cfg.Plan.TermMonths)
		assert.Equal(t, 450, cfg.Plan.AnnualRateBps)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("malformed integer falls back to the default", func(t *testing.T) {
		t.Setenv("PLAN_TERM_MONTHS", "not-a-number")

		cfg := config.Load()

		assert.Equal(t, 12, cfg.Plan.TermMonths)
	})
}
