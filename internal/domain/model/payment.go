package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is an immutable ledger record of an amount credited to a single
// debt. Once recorded it is never edited or removed.
type Payment struct {
	id            uuid.UUID
	amount        decimal.Decimal
	payerName     string
	instrumentRef string
	recordedAt    time.Time
}

// NewPayment creates a payment record. The amount must be strictly positive:
// the allocation never produces zero-amount entries.
func NewPayment(amount decimal.Decimal, payerName, instrumentRef string, recordedAt time.Time) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, fmt.Errorf("payment amount must be positive, got: %s", amount.String())
	}
	if payerName == "" {
		return Payment{}, fmt.Errorf("payer name is required")
	}
	if instrumentRef == "" {
		return Payment{}, fmt.Errorf("payment instrument reference is required")
	}
	return Payment{
		id:            uuid.New(),
		amount:        amount,
		payerName:     payerName,
		instrumentRef: instrumentRef,
		recordedAt:    recordedAt,
	}, nil
}

// ReconstructPayment rebuilds a payment record from persistence.
func ReconstructPayment(id uuid.UUID, amount decimal.Decimal, payerName, instrumentRef string, recordedAt time.Time) Payment {
	return Payment{
		id:            id,
		amount:        amount,
		payerName:     payerName,
		instrumentRef: instrumentRef,
		recordedAt:    recordedAt,
	}
}

func (p Payment) ID() uuid.UUID           { return p.id }
func (p Payment) Amount() decimal.Decimal { return p.amount }
func (p Payment) PayerName() string       { return p.payerName }
func (p Payment) InstrumentRef() string   { return p.instrumentRef }
func (p Payment) RecordedAt() time.Time   { return p.recordedAt }
