package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// AllocationStatus – immutable value object
// ---------------------------------------------------------------------------

// AllocationStatus classifies the outcome of a payment allocation. Callers in
// the request-handling layer derive their transport status from it.
type AllocationStatus struct {
	value string
}

const (
	allocationStatusSucceeded      = "SUCCEEDED"
	allocationStatusInvalidAmount  = "INVALID_AMOUNT"
	allocationStatusTargetNotFound = "TARGET_NOT_FOUND"
)

var (
	AllocationStatusSucceeded      = AllocationStatus{value: allocationStatusSucceeded}
	AllocationStatusInvalidAmount  = AllocationStatus{value: allocationStatusInvalidAmount}
	AllocationStatusTargetNotFound = AllocationStatus{value: allocationStatusTargetNotFound}
)

var validAllocationStatuses = map[string]AllocationStatus{
	allocationStatusSucceeded:      AllocationStatusSucceeded,
	allocationStatusInvalidAmount:  AllocationStatusInvalidAmount,
	allocationStatusTargetNotFound: AllocationStatusTargetNotFound,
}

// NewAllocationStatus creates an AllocationStatus from a raw string.
func NewAllocationStatus(s string) (AllocationStatus, error) {
	v, ok := validAllocationStatuses[s]
	if !ok {
		return AllocationStatus{}, fmt.Errorf("invalid allocation status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s AllocationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s AllocationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s AllocationStatus) Equal(other AllocationStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidPaymentAmount is returned when a declared payment amount is
	// zero or negative. No ledger mutation takes place.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrTargetDebtNotFound is returned when a non-empty target debt
	// identifier matches none of the debtor's debts. The whole payment is
	// rejected and no ledger mutation takes place.
	ErrTargetDebtNotFound = errors.New("target debt not found")
)
