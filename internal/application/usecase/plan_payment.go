package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JWatus/MiCuentaApp/internal/application/dto"
	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/service"
)

// PlanPaymentUseCase computes an installment plan for a declared amount. It
// is independent of the ledger: no debtor lookup, no mutation.
type PlanPaymentUseCase struct {
	calculator *service.PlanCalculator
	logger     *slog.Logger
}

// NewPlanPaymentUseCase wires dependencies.
func NewPlanPaymentUseCase(calculator *service.PlanCalculator, logger *slog.Logger) *PlanPaymentUseCase {
	return &PlanPaymentUseCase{calculator: calculator, logger: logger}
}

// Execute derives the installment schedule for the declaration.
func (uc *PlanPaymentUseCase) Execute(ctx context.Context, req dto.PlanPaymentRequest) (dto.PaymentPlanResponse, error) {
	declaration, err := model.NewPaymentDeclaration(req.Amount, req.SSN, "")
	if err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("invalid payment declaration: %w", err)
	}

	plan, err := uc.calculator.PlanFor(declaration, time.Now().UTC())
	if err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("compute payment plan: %w", err)
	}

	uc.logger.DebugContext(ctx, "payment plan computed",
		slog.String("ssn", req.SSN),
		slog.Int("installments", len(plan.Installments)),
	)

	return dto.NewPaymentPlanResponse(plan), nil
}
