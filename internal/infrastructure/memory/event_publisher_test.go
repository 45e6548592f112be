package memory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JWatus/MiCuentaApp/internal/domain/event"
	"github.com/JWatus/MiCuentaApp/internal/infrastructure/memory"
)

func TestEventPublisher(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("retains events in publish order", func(t *testing.T) {
		pub := memory.NewEventPublisher(logger)

		first := event.NewPaymentRecorded("PLWT/871422", "980-122-111", "Horde",
			decimal.RequireFromString("500"), decimal.RequireFromString("3500"))
		second := event.NewDebtSettled("PLWT/871422", "980-122-111", decimal.RequireFromString("4000"))

		require.NoError(t, pub.Publish(ctx, first, second))

		drained := pub.Drain()
		require.Len(t, drained, 2)
		assert.Equal(t, "micuenta.debt.payment_recorded", drained[0].EventType())
		assert.Equal(t, "micuenta.debt.settled", drained[1].EventType())
		assert.Equal(t, "PLWT/871422", drained[0].AggregateID())
	})

	t.Run("drain resets the stream", func(t *testing.T) {
		pub := memory.NewEventPublisher(logger)

		evt := event.NewPaymentSurplusDiscarded("980-122-111", decimal.RequireFromString("957"))
		require.NoError(t, pub.Publish(ctx, evt))

		require.Len(t, pub.Drain(), 1)
		assert.Empty(t, pub.Drain())
	})
}
