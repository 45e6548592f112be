package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JWatus/MiCuentaApp/internal/application/dto"
	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/port"
	"github.com/JWatus/MiCuentaApp/internal/domain/valueobject"
)

// RecordPaymentUseCase applies a confirmed payment to a debtor's debt ledger.
type RecordPaymentUseCase struct {
	debtors   port.DebtorRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRecordPaymentUseCase wires dependencies.
func NewRecordPaymentUseCase(
	debtors port.DebtorRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		debtors:   debtors,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute allocates the confirmed payment over the debtor's debts.
// Failed allocations leave the ledger untouched; callers can classify the
// failure with errors.Is against valueobject.ErrInvalidPaymentAmount and
// valueobject.ErrTargetDebtNotFound.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.AllocationResponse, error) {
	now := time.Now().UTC()

	// 1. Assemble the confirmation value.
	card, err := valueobject.NewCreditCard(
		req.Card.Number, req.Card.CVV,
		req.Card.FirstName, req.Card.LastName,
		req.Card.Provider, req.Card.ValidThru,
	)
	if err != nil {
		return dto.AllocationResponse{}, fmt.Errorf("invalid credit card: %w", err)
	}
	declaration, err := model.NewPaymentDeclaration(req.Amount, req.SSN, req.DebtUUID)
	if err != nil {
		return dto.AllocationResponse{}, fmt.Errorf("invalid payment declaration: %w", err)
	}
	confirmation, err := model.NewPaymentConfirmation(declaration, req.PayerName, card)
	if err != nil {
		return dto.AllocationResponse{}, fmt.Errorf("invalid payment confirmation: %w", err)
	}

	// 2. Retrieve the debtor.
	debtor, err := uc.debtors.FindBySSN(ctx, req.SSN)
	if err != nil {
		return dto.AllocationResponse{}, fmt.Errorf("find debtor: %w", err)
	}

	// 3. Allocate.
	debtor, result, err := debtor.AllocatePayment(confirmation, now)
	if err != nil {
		allocationFailures.WithLabelValues(failureReason(err)).Inc()
		return dto.AllocationResponse{}, fmt.Errorf("allocate payment: %w", err)
	}

	// 4. Persist the updated ledger.
	if err := uc.debtors.Save(ctx, debtor); err != nil {
		return dto.AllocationResponse{}, fmt.Errorf("save debtor: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, debtor.DomainEvents()...); err != nil {
		return dto.AllocationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	paymentsRecorded.Inc()
	debtAllocations.Add(float64(len(result.Allocations)))
	if result.Surplus.IsPositive() {
		surplusDiscarded.Add(result.Surplus.InexactFloat64())
		uc.logger.WarnContext(ctx, "payment surplus discarded",
			slog.String("ssn", req.SSN),
			slog.String("surplus", result.Surplus.StringFixedBank(2)),
		)
	}
	uc.logger.InfoContext(ctx, "payment allocated",
		slog.String("ssn", req.SSN),
		slog.String("total_credited", result.TotalCredited.StringFixedBank(2)),
		slog.Int("debts_credited", len(result.Allocations)),
	)

	return dto.NewAllocationResponse(debtor, result), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, valueobject.ErrInvalidPaymentAmount):
		return "invalid_amount"
	case errors.Is(err, valueobject.ErrTargetDebtNotFound):
		return "target_not_found"
	default:
		return "other"
	}
}
