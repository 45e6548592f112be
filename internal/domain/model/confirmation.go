package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JWatus/MiCuentaApp/internal/domain/valueobject"
)

// PaymentDeclaration is the transient input naming an amount, the debtor's
// account reference (ssn) and an optional target debt. An empty debt uuid
// means "no preference".
//
// The amount is deliberately not validated here: classifying a non-positive
// amount is the allocation's job, so the failure carries an allocation status.
type PaymentDeclaration struct {
	amount   decimal.Decimal
	ssn      string
	debtUUID string
}

// NewPaymentDeclaration creates a declaration for the given account reference.
func NewPaymentDeclaration(amount decimal.Decimal, ssn, debtUUID string) (PaymentDeclaration, error) {
	if ssn == "" {
		return PaymentDeclaration{}, fmt.Errorf("ssn is required")
	}
	return PaymentDeclaration{amount: amount, ssn: ssn, debtUUID: debtUUID}, nil
}

func (pd PaymentDeclaration) Amount() decimal.Decimal { return pd.amount }
func (pd PaymentDeclaration) SSN() string             { return pd.ssn }
func (pd PaymentDeclaration) DebtUUID() string        { return pd.debtUUID }

// PaymentConfirmation is a declaration together with the payer identity and
// the payment instrument used. It is the full input of the allocation.
type PaymentConfirmation struct {
	declaration PaymentDeclaration
	payerName   string
	card        valueobject.CreditCard
}

// NewPaymentConfirmation combines a declaration with payer name and card.
func NewPaymentConfirmation(declaration PaymentDeclaration, payerName string, card valueobject.CreditCard) (PaymentConfirmation, error) {
	if declaration.ssn == "" {
		return PaymentConfirmation{}, fmt.Errorf("payment declaration is required")
	}
	if payerName == "" {
		return PaymentConfirmation{}, fmt.Errorf("payer name is required")
	}
	if card.IsZero() {
		return PaymentConfirmation{}, fmt.Errorf("credit card is required")
	}
	return PaymentConfirmation{declaration: declaration, payerName: payerName, card: card}, nil
}

func (pc PaymentConfirmation) Declaration() PaymentDeclaration { return pc.declaration }
func (pc PaymentConfirmation) Amount() decimal.Decimal         { return pc.declaration.amount }
func (pc PaymentConfirmation) SSN() string                     { return pc.declaration.ssn }
func (pc PaymentConfirmation) TargetDebtUUID() string          { return pc.declaration.debtUUID }
func (pc PaymentConfirmation) PayerName() string               { return pc.payerName }
func (pc PaymentConfirmation) Card() valueobject.CreditCard    { return pc.card }
