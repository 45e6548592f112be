package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JWatus/MiCuentaApp/internal/domain/event"
	"github.com/JWatus/MiCuentaApp/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Debtor aggregate root
// ---------------------------------------------------------------------------

// Debtor owns an ordered collection of debts. The order is fixed at creation
// time and is significant: it is the cascade order of the payment allocation.
// Debtor is an immutable aggregate; mutations return a new copy.
type Debtor struct {
	ssn          string
	firstName    string
	lastName     string
	debts        []Debt
	domainEvents []event.DomainEvent
}

// NewDebtor creates a debtor with its full debt collection. Debts are never
// added or reordered afterwards.
func NewDebtor(ssn, firstName, lastName string, debts []Debt) (Debtor, error) {
	if ssn == "" {
		return Debtor{}, fmt.Errorf("ssn is required")
	}
	if firstName == "" || lastName == "" {
		return Debtor{}, fmt.Errorf("debtor name is required")
	}
	seen := make(map[string]struct{}, len(debts))
	for _, d := range debts {
		if _, dup := seen[d.uuid]; dup {
			return Debtor{}, fmt.Errorf("duplicate debt uuid: %q", d.uuid)
		}
		seen[d.uuid] = struct{}{}
	}
	return Debtor{ssn: ssn, firstName: firstName, lastName: lastName, debts: copyDebts(debts)}, nil
}

// ReconstructDebtor rebuilds a Debtor aggregate from persistence (no validation, no events).
func ReconstructDebtor(ssn, firstName, lastName string, debts []Debt) Debtor {
	return Debtor{ssn: ssn, firstName: firstName, lastName: lastName, debts: copyDebts(debts)}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d Debtor) SSN() string       { return d.ssn }
func (d Debtor) FirstName() string { return d.firstName }
func (d Debtor) LastName() string  { return d.lastName }

// Debts returns a defensive copy of the debt collection in stored order.
func (d Debtor) Debts() []Debt {
	return copyDebts(d.debts)
}

// DebtByUUID looks up a debt by exact identifier match.
func (d Debtor) DebtByUUID(uuid string) (Debt, bool) {
	for _, debt := range d.debts {
		if debt.uuid == uuid {
			return debt, true
		}
	}
	return Debt{}, false
}

// TotalOutstanding sums the outstanding balance of every debt.
func (d Debtor) TotalOutstanding() decimal.Decimal {
	total := decimal.Zero
	for _, debt := range d.debts {
		total = total.Add(debt.OutstandingBalance())
	}
	return total
}

// DomainEvents returns the events collected since the last clear.
func (d Debtor) DomainEvents() []event.DomainEvent { return d.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (d Debtor) ClearEvents() Debtor {
	next := d
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// Payment allocation
// ---------------------------------------------------------------------------

// Allocation is one debt's share of an allocated payment.
type Allocation struct {
	DebtUUID string
	Amount   decimal.Decimal
}

// AllocationResult describes how a confirmed payment was spread over the
// debtor's debts.
type AllocationResult struct {
	Status        valueobject.AllocationStatus
	Allocations   []Allocation
	TotalCredited decimal.Decimal
	Surplus       decimal.Decimal
}

// AllocatePayment applies a confirmed payment to the debt ledger using
// waterfall allocation (immutable - returns new copy):
//
//  1. If the confirmation targets an existing debt, that debt is credited
//     first; the remainder cascades through the other debts in stored order.
//     Without a target the stored order is used from the start.
//  2. Each debt is credited min(remaining, outstanding); settled debts are
//     skipped, so no zero-amount payment records are ever created.
//  3. Whatever remains after the last debt is discarded: a payment exceeding
//     the total outstanding debt is not an error.
//
// A non-positive amount or a target uuid matching no debt rejects the whole
// payment; the debtor is returned unmodified.
func (d Debtor) AllocatePayment(confirmation PaymentConfirmation, now time.Time) (Debtor, AllocationResult, error) {
	amount := confirmation.Amount()
	if !amount.IsPositive() {
		result := AllocationResult{Status: valueobject.AllocationStatusInvalidAmount}
		return d, result, fmt.Errorf("%w, got: %s", valueobject.ErrInvalidPaymentAmount, amount.String())
	}

	targetIdx := -1
	if target := confirmation.TargetDebtUUID(); target != "" {
		for i := range d.debts {
			if d.debts[i].uuid == target {
				targetIdx = i
				break
			}
		}
		if targetIdx < 0 {
			result := AllocationResult{Status: valueobject.AllocationStatusTargetNotFound}
			return d, result, fmt.Errorf("%w: %q", valueobject.ErrTargetDebtNotFound, target)
		}
	}

	order := make([]int, 0, len(d.debts))
	if targetIdx >= 0 {
		order = append(order, targetIdx)
	}
	for i := range d.debts {
		if i != targetIdx {
			order = append(order, i)
		}
	}

	next := d
	next.debts = copyDebts(d.debts)
	next.domainEvents = copyEvents(d.domainEvents)

	remaining := amount
	var allocations []Allocation

	for _, i := range order {
		if !remaining.IsPositive() {
			break
		}
		balance := next.debts[i].OutstandingBalance()
		if !balance.IsPositive() {
			continue
		}

		credit := decimal.Min(remaining, balance)
		payment, err := NewPayment(credit, confirmation.PayerName(), confirmation.Card().Reference(), now)
		if err != nil {
			return d, AllocationResult{}, fmt.Errorf("create payment: %w", err)
		}
		credited, err := next.debts[i].RecordPayment(payment)
		if err != nil {
			return d, AllocationResult{}, fmt.Errorf("record payment: %w", err)
		}

		next.debts[i] = credited
		remaining = remaining.Sub(credit)
		allocations = append(allocations, Allocation{DebtUUID: credited.uuid, Amount: credit})

		next.domainEvents = append(next.domainEvents, event.NewPaymentRecorded(
			credited.uuid, d.ssn, confirmation.PayerName(), credit, credited.OutstandingBalance(),
		))
		if credited.IsSettled() {
			next.domainEvents = append(next.domainEvents, event.NewDebtSettled(credited.uuid, d.ssn, credited.principal))
		}
	}

	if remaining.IsPositive() {
		next.domainEvents = append(next.domainEvents, event.NewPaymentSurplusDiscarded(d.ssn, remaining))
	}

	result := AllocationResult{
		Status:        valueobject.AllocationStatusSucceeded,
		Allocations:   allocations,
		TotalCredited: amount.Sub(remaining),
		Surplus:       remaining,
	}
	return next, result, nil
}

func copyDebts(debts []Debt) []Debt {
	if debts == nil {
		return nil
	}
	out := make([]Debt, len(debts))
	copy(out, debts)
	return out
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	return append([]event.DomainEvent{}, evts...)
}
