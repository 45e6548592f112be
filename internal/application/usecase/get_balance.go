package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JWatus/MiCuentaApp/internal/application/dto"
	"github.com/JWatus/MiCuentaApp/internal/domain/port"
)

// GetBalanceUseCase reports a debtor's ledger state: every debt with its
// principal, payment history and outstanding balance.
type GetBalanceUseCase struct {
	debtors port.DebtorRepository
	logger  *slog.Logger
}

// NewGetBalanceUseCase wires dependencies.
func NewGetBalanceUseCase(debtors port.DebtorRepository, logger *slog.Logger) *GetBalanceUseCase {
	return &GetBalanceUseCase{debtors: debtors, logger: logger}
}

// Execute retrieves the debtor and maps its balances. Querying is read-only
// and idempotent.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, ssn string) (dto.BalanceResponse, error) {
	debtor, err := uc.debtors.FindBySSN(ctx, ssn)
	if err != nil {
		return dto.BalanceResponse{}, fmt.Errorf("find debtor: %w", err)
	}

	uc.logger.DebugContext(ctx, "balance reported",
		slog.String("ssn", ssn),
		slog.Int("debts", len(debtor.Debts())),
	)

	return dto.NewBalanceResponse(debtor), nil
}
