package observability_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JWatus/MiCuentaApp/internal/infrastructure/config"
	"github.com/JWatus/MiCuentaApp/internal/infrastructure/observability"
)

func TestInitLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		logger := observability.InitLogger(config.LogConfig{Level: "info", Format: "json"})
		require.NotNil(t, logger)
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("debug level enables debug records", func(t *testing.T) {
		logger := observability.InitLogger(config.LogConfig{Level: "debug", Format: "text"})
		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := observability.InitLogger(config.LogConfig{Level: "chatty", Format: "json"})
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})
}
