package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Debt is a single obligation of a debtor: an immutable principal and an
// append-only, chronologically ordered payment history. The invariant
// sum(payments) <= principal holds at all times; RecordPayment enforces it.
type Debt struct {
	uuid      string
	principal decimal.Decimal
	payments  []Payment
}

// NewDebt creates a debt with an empty payment history.
func NewDebt(uuid string, principal decimal.Decimal) (Debt, error) {
	if uuid == "" {
		return Debt{}, fmt.Errorf("debt uuid is required")
	}
	if !principal.IsPositive() {
		return Debt{}, fmt.Errorf("debt principal must be positive, got: %s", principal.String())
	}
	return Debt{uuid: uuid, principal: principal}, nil
}

// ReconstructDebt rebuilds a debt from persistence (no validation).
func ReconstructDebt(uuid string, principal decimal.Decimal, payments []Payment) Debt {
	return Debt{uuid: uuid, principal: principal, payments: copyPayments(payments)}
}

// UUID returns the debt identifier.
func (d Debt) UUID() string { return d.uuid }

// Principal returns the immutable principal amount.
func (d Debt) Principal() decimal.Decimal { return d.principal }

// Payments returns a defensive copy of the payment history in insertion order.
func (d Debt) Payments() []Payment {
	return copyPayments(d.payments)
}

// SumOfPayments sums all recorded payment amounts with exact decimal
// arithmetic. The full precision is retained; rounding to currency scale is a
// reporting concern.
func (d Debt) SumOfPayments() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range d.payments {
		sum = sum.Add(p.amount)
	}
	return sum
}

// OutstandingBalance returns principal minus the sum of payments, floored at
// zero.
func (d Debt) OutstandingBalance() decimal.Decimal {
	balance := d.principal.Sub(d.SumOfPayments())
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// IsSettled returns true when nothing remains outstanding.
func (d Debt) IsSettled() bool {
	return !d.OutstandingBalance().IsPositive()
}

// RecordPayment appends a payment to the history (immutable - returns new copy).
// It refuses any amount that would push the payment sum past the principal.
func (d Debt) RecordPayment(p Payment) (Debt, error) {
	if !p.amount.IsPositive() {
		return Debt{}, fmt.Errorf("payment amount must be positive, got: %s", p.amount.String())
	}
	if p.amount.GreaterThan(d.OutstandingBalance()) {
		return Debt{}, fmt.Errorf("payment of %s exceeds outstanding balance %s on debt %s",
			p.amount.String(), d.OutstandingBalance().String(), d.uuid)
	}

	updated := d
	updated.payments = append(copyPayments(d.payments), p)
	return updated, nil
}

func copyPayments(payments []Payment) []Payment {
	if payments == nil {
		return nil
	}
	out := make([]Payment, len(payments))
	copy(out, payments)
	return out
}
