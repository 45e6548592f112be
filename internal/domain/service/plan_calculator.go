package service

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/valueobject"
)

// PlanPolicy is the schedule policy applied to every computed plan.
type PlanPolicy struct {
	// TermMonths is the number of monthly installments.
	TermMonths int
	// AnnualRateBps is the annual interest rate in basis points
	// (e.g. 500 = 5.00%). Zero means an even, interest-free split.
	AnnualRateBps int
}

// Installment is one period of a payment plan.
type Installment struct {
	Period           int
	DueDate          time.Time
	Amount           decimal.Decimal
	RemainingBalance decimal.Decimal
}

// PaymentPlan describes how a declared amount would be scheduled. It is a
// transient value: it is not persisted and not linked to any debt.
type PaymentPlan struct {
	SSN            string
	DeclaredAmount decimal.Decimal
	Installments   []Installment
}

// PlanCalculator derives installment schedules from payment declarations.
// It never touches the debt ledger.
type PlanCalculator struct {
	policy PlanPolicy
}

// NewPlanCalculator wires the schedule policy.
func NewPlanCalculator(policy PlanPolicy) *PlanCalculator {
	return &PlanCalculator{policy: policy}
}

// PlanFor computes a fixed-payment schedule for the declared amount:
//
//	monthlyRate = annualRateBps / 10_000 / 12
//	installment = A * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degrades to an even split. The last installment absorbs the
// rounding remainder so the plan balance reaches exactly zero. The first
// installment is due one month after startDate.
func (c *PlanCalculator) PlanFor(declaration model.PaymentDeclaration, startDate time.Time) (PaymentPlan, error) {
	amount := declaration.Amount()
	if !amount.IsPositive() {
		return PaymentPlan{}, fmt.Errorf("%w, got: %s", valueobject.ErrInvalidPaymentAmount, amount.String())
	}
	if c.policy.TermMonths <= 0 {
		return PaymentPlan{}, fmt.Errorf("plan term must be positive, got: %d", c.policy.TermMonths)
	}

	termMonths := c.policy.TermMonths
	annualRate := float64(c.policy.AnnualRateBps) / 10_000.0
	monthlyRate := annualRate / 12.0

	var installmentAmount decimal.Decimal
	if monthlyRate == 0 {
		installmentAmount = amount.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	} else {
		factor := math.Pow(1+monthlyRate, float64(termMonths))
		paymentFloat := amount.InexactFloat64() * monthlyRate * factor / (factor - 1)
		installmentAmount = decimal.NewFromFloat(paymentFloat).Round(2)
	}

	installments := make([]Installment, 0, termMonths)
	remaining := amount
	monthlyRateDec := decimal.NewFromFloat(monthlyRate)

	for period := 1; period <= termMonths; period++ {
		dueDate := startDate.AddDate(0, period, 0)

		interest := remaining.Mul(monthlyRateDec).Round(2)
		principalPart := installmentAmount.Sub(interest)
		total := installmentAmount

		// Last period: adjust for rounding so the balance reaches exactly zero.
		if period == termMonths {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		installments = append(installments, Installment{
			Period:           period,
			DueDate:          dueDate,
			Amount:           total,
			RemainingBalance: remaining,
		})
	}

	return PaymentPlan{
		SSN:            declaration.SSN(),
		DeclaredAmount: amount,
		Installments:   installments,
	}, nil
}
