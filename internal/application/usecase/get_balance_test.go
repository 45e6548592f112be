package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JWatus/MiCuentaApp/internal/application/usecase"
	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/port"
)

func TestGetBalance_Execute(t *testing.T) {
	t.Run("reports every debt with rounded balances", func(t *testing.T) {
		debtorRepo := &mockDebtorRepository{
			findBySSNFunc: func(ctx context.Context, ssn string) (model.Debtor, error) {
				assert.Equal(t, "980-122-111", ssn)
				return seededDebtor(t), nil
			},
		}

		uc := usecase.NewGetBalanceUseCase(debtorRepo, discardLogger())

		resp, err := uc.Execute(context.Background(), "980-122-111")
		require.NoError(t, err)

		assert.Equal(t, "980-122-111", resp.SSN)
		assert.Equal(t, "Jaina", resp.FirstName)
		assert.Equal(t, "Proudmoore", resp.LastName)
		assert.True(t, decimal.RequireFromString("37723.00").Equal(resp.TotalOutstanding))

		require.Len(t, resp.Debts, 2)
		assert.Equal(t, "PLWT/871422", resp.Debts[0].UUID)
		assert.True(t, decimal.RequireFromString("1277.00").Equal(resp.Debts[0].SumOfPayments))
		assert.True(t, decimal.RequireFromString("2723.00").Equal(resp.Debts[0].OutstandingBalance))
		require.Len(t, resp.Debts[0].Payments, 1)
		assert.Equal(t, "MasterCard ****3456", resp.Debts[0].Payments[0].InstrumentRef)

		assert.Equal(t, "ADWR/595501", resp.Debts[1].UUID)
		assert.True(t, decimal.RequireFromString("35000.00").Equal(resp.Debts[1].OutstandingBalance))
		assert.Empty(t, resp.Debts[1].Payments)
	})

	t.Run("does not write to the repository", func(t *testing.T) {
		debtorRepo := &mockDebtorRepository{
			findBySSNFunc: func(ctx context.Context, ssn string) (model.Debtor, error) {
				return seededDebtor(t), nil
			},
		}

		uc := usecase.NewGetBalanceUseCase(debtorRepo, discardLogger())

		_, err := uc.Execute(context.Background(), "980-122-111")
		require.NoError(t, err)
		assert.Empty(t, debtorRepo.savedDebtors)
	})

	t.Run("fails when the debtor is unknown", func(t *testing.T) {
		debtorRepo := &mockDebtorRepository{
			findBySSNFunc: func(ctx context.Context, ssn string) (model.Debtor, error) {
				return model.Debtor{}, fmt.Errorf("lookup: %w", port.ErrDebtorNotFound)
			},
		}

		uc := usecase.NewGetBalanceUseCase(debtorRepo, discardLogger())

		_, err := uc.Execute(context.Background(), "000-000-000")
		require.Error(t, err)
		assert.True(t, errors.Is(err, port.ErrDebtorNotFound))
		assert.Contains(t, err.Error(), "find debtor")
	})
}
