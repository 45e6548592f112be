package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/valueobject"
)

func TestNewPaymentDeclaration(t *testing.T) {
	t.Run("creates a declaration without validating the amount", func(t *testing.T) {
		// Amount classification is the allocation's job, so even a negative
		// amount builds a declaration.
		declaration, err := model.NewPaymentDeclaration(decimal.NewFromInt(-5), "980-122-111", "PLWT/871422")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-5).Equal(declaration.Amount()))
		assert.Equal(t, "980-122-111", declaration.SSN())
		assert.Equal(t, "PLWT/871422", declaration.DebtUUID())
	})

	t.Run("rejects missing ssn", func(t *testing.T) {
		_, err := model.NewPaymentDeclaration(decimal.NewFromInt(100), "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ssn is required")
	})
}

func TestNewPaymentConfirmation(t *testing.T) {
	declaration, err := model.NewPaymentDeclaration(decimal.NewFromInt(100), "980-122-111", "")
	require.NoError(t, err)

	t.Run("combines declaration, payer and card", func(t *testing.T) {
		confirmation, err := model.NewPaymentConfirmation(declaration, "Horde", testCard(t))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(confirmation.Amount()))
		assert.Equal(t, "980-122-111", confirmation.SSN())
		assert.Equal(t, "", confirmation.TargetDebtUUID())
		assert.Equal(t, "Horde", confirmation.PayerName())
		assert.Equal(t, "VISA ****8765", confirmation.Card().Reference())
	})

	t.Run("rejects missing payer name", func(t *testing.T) {
		_, err := model.NewPaymentConfirmation(declaration, "", testCard(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payer name is required")
	})

	t.Run("rejects missing card", func(t *testing.T) {
		_, err := model.NewPaymentConfirmation(declaration, "Horde", valueobject.CreditCard{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credit card is required")
	})

	t.Run("rejects zero-value declaration", func(t *testing.T) {
		_, err := model.NewPaymentConfirmation(model.PaymentDeclaration{}, "Horde", testCard(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment declaration is required")
	})
}
