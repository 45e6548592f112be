package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/service"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CardDetails carries the payment instrument presented by the payer.
type CardDetails struct {
	Number    string    `json:"number"`
	CVV       string    `json:"cvv"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Provider  string    `json:"provider"`
	ValidThru time.Time `json:"valid_thru"`
}

// RecordPaymentRequest carries a confirmed payment to apply to a debtor's ledger.
// An empty DebtUUID means no target preference.
type RecordPaymentRequest struct {
	SSN       string          `json:"ssn"`
	Amount    decimal.Decimal `json:"payment_amount"`
	DebtUUID  string          `json:"debt_uuid,omitempty"`
	PayerName string          `json:"payer_name"`
	Card      CardDetails     `json:"credit_card"`
}

// PlanPaymentRequest carries a payment declaration to schedule.
type PlanPaymentRequest struct {
	SSN    string          `json:"ssn"`
	Amount decimal.Decimal `json:"payment_amount"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentResponse is the external representation of one ledger entry.
type PaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PayerName     string          `json:"payer_name"`
	InstrumentRef string          `json:"instrument_ref"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// DebtResponse is the external representation of a debt with its balances.
// Monetary values are rounded half-to-even at currency scale here and only
// here; the ledger itself keeps full precision.
type DebtResponse struct {
	UUID               string            `json:"uuid"`
	Principal          decimal.Decimal   `json:"principal"`
	SumOfPayments      decimal.Decimal   `json:"sum_of_payments"`
	OutstandingBalance decimal.Decimal   `json:"outstanding_balance"`
	Payments           []PaymentResponse `json:"payments,omitempty"`
}

// BalanceResponse is the external representation of a debtor's ledger state.
type BalanceResponse struct {
	SSN              string          `json:"ssn"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	Debts            []DebtResponse  `json:"debts"`
}

// AllocationEntryResponse is one debt's share of an allocated payment.
type AllocationEntryResponse struct {
	DebtUUID string          `json:"debt_uuid"`
	Amount   decimal.Decimal `json:"amount"`
}

// AllocationResponse is the external representation of an allocation outcome.
type AllocationResponse struct {
	SSN           string                    `json:"ssn"`
	Status        string                    `json:"status"`
	TotalCredited decimal.Decimal           `json:"total_credited"`
	Surplus       decimal.Decimal           `json:"surplus"`
	Allocations   []AllocationEntryResponse `json:"allocations"`
	Debts         []DebtResponse            `json:"debts"`
}

// InstallmentResponse is one period of a computed payment plan.
type InstallmentResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// PaymentPlanResponse is the external representation of a payment plan.
type PaymentPlanResponse struct {
	SSN            string                `json:"ssn"`
	DeclaredAmount decimal.Decimal       `json:"declared_amount"`
	Installments   []InstallmentResponse `json:"installments"`
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// NewDebtResponse maps a debt, applying scale-2 bank rounding for display.
func NewDebtResponse(debt model.Debt, includePayments bool) DebtResponse {
	resp := DebtResponse{
		UUID:               debt.UUID(),
		Principal:          debt.Principal().RoundBank(2),
		SumOfPayments:      debt.SumOfPayments().RoundBank(2),
		OutstandingBalance: debt.OutstandingBalance().RoundBank(2),
	}
	if includePayments {
		payments := debt.Payments()
		resp.Payments = make([]PaymentResponse, 0, len(payments))
		for _, p := range payments {
			resp.Payments = append(resp.Payments, PaymentResponse{
				ID:            p.ID().String(),
				Amount:        p.Amount().RoundBank(2),
				PayerName:     p.PayerName(),
				InstrumentRef: p.InstrumentRef(),
				RecordedAt:    p.RecordedAt(),
			})
		}
	}
	return resp
}

// NewBalanceResponse maps a debtor's full ledger state.
func NewBalanceResponse(debtor model.Debtor) BalanceResponse {
	debts := debtor.Debts()
	resp := BalanceResponse{
		SSN:              debtor.SSN(),
		FirstName:        debtor.FirstName(),
		LastName:         debtor.LastName(),
		TotalOutstanding: debtor.TotalOutstanding().RoundBank(2),
		Debts:            make([]DebtResponse, 0, len(debts)),
	}
	for _, d := range debts {
		resp.Debts = append(resp.Debts, NewDebtResponse(d, true))
	}
	return resp
}

// NewAllocationResponse maps an allocation result and the updated ledger.
func NewAllocationResponse(debtor model.Debtor, result model.AllocationResult) AllocationResponse {
	debts := debtor.Debts()
	resp := AllocationResponse{
		SSN:           debtor.SSN(),
		Status:        result.Status.String(),
		TotalCredited: result.TotalCredited.RoundBank(2),
		Surplus:       result.Surplus.RoundBank(2),
		Allocations:   make([]AllocationEntryResponse, 0, len(result.Allocations)),
		Debts:         make([]DebtResponse, 0, len(debts)),
	}
	for _, a := range result.Allocations {
		resp.Allocations = append(resp.Allocations, AllocationEntryResponse{
			DebtUUID: a.DebtUUID,
			Amount:   a.Amount.RoundBank(2),
		})
	}
	for _, d := range debts {
		resp.Debts = append(resp.Debts, NewDebtResponse(d, false))
	}
	return resp
}

// NewPaymentPlanResponse maps a computed payment plan.
func NewPaymentPlanResponse(plan service.PaymentPlan) PaymentPlanResponse {
	resp := PaymentPlanResponse{
		SSN:            plan.SSN,
		DeclaredAmount: plan.DeclaredAmount.RoundBank(2),
		Installments:   make([]InstallmentResponse, 0, len(plan.Installments)),
	}
	for _, ins := range plan.Installments {
		resp.Installments = append(resp.Installments, InstallmentResponse{
			Period:           ins.Period,
			DueDate:          ins.DueDate,
			Amount:           ins.Amount.RoundBank(2),
			RemainingBalance: ins.RemainingBalance.RoundBank(2),
		})
	}
	return resp
}
