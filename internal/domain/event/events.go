package event

import (
	"github.com/shopspring/decimal"

	"github.com/JWatus/MiCuentaApp/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// PaymentRecorded is raised for every debt credited during an allocation. The
// amount is the portion credited to that debt, not the declared payment amount.
type PaymentRecorded struct {
	events.BaseEvent
	DebtorSSN          string          `json:"debtor_ssn"`
	PayerName          string          `json:"payer_name"`
	Amount             decimal.Decimal `json:"amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewPaymentRecorded(debtUUID, debtorSSN, payerName string, amount, outstanding decimal.Decimal) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:          events.NewBaseEvent("micuenta.debt.payment_recorded", debtUUID, "Debt"),
		DebtorSSN:          debtorSSN,
		PayerName:          payerName,
		Amount:             amount,
		OutstandingBalance: outstanding,
	}
}

// DebtSettled is raised when a debt's outstanding balance reaches zero.
type DebtSettled struct {
	events.BaseEvent
	DebtorSSN string          `json:"debtor_ssn"`
	Principal decimal.Decimal `json:"principal"`
}

func NewDebtSettled(debtUUID, debtorSSN string, principal decimal.Decimal) DebtSettled {
	return DebtSettled{
		BaseEvent: events.NewBaseEvent("micuenta.debt.settled", debtUUID, "Debt"),
		DebtorSSN: debtorSSN,
		Principal: principal,
	}
}

// PaymentSurplusDiscarded is raised when a payment exceeds the debtor's total
// outstanding debt. The surplus produces no ledger entry.
type PaymentSurplusDiscarded struct {
	events.BaseEvent
	Surplus decimal.Decimal `json:"surplus"`
}

func NewPaymentSurplusDiscarded(debtorSSN string, surplus decimal.Decimal) PaymentSurplusDiscarded {
	return PaymentSurplusDiscarded{
		BaseEvent: events.NewBaseEvent("micuenta.debtor.payment_surplus_discarded", debtorSSN, "Debtor"),
		Surplus:   surplus,
	}
}
