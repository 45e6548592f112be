package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/JWatus/MiCuentaApp/internal/domain/model"
	"github.com/JWatus/MiCuentaApp/internal/domain/port"
)

// DebtorRepository is an in-memory port.DebtorRepository. The mutex serializes
// writes, giving the single-writer-per-debtor discipline the allocation
// requires. The durable adapter lives with the persistence collaborator.
type DebtorRepository struct {
	mu      sync.RWMutex
	debtors map[string]model.Debtor
}

// NewDebtorRepository creates an empty repository.
func NewDebtorRepository() *DebtorRepository {
	return &DebtorRepository{debtors: make(map[string]model.Debtor)}
}

// Save stores the debtor keyed by ssn. Collected domain events are dropped:
// they belong to the publisher, not to stored state.
func (r *DebtorRepository) Save(_ context.Context, debtor model.Debtor) error {
	if debtor.SSN() == "" {
		return fmt.Errorf("cannot save debtor without ssn")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.debtors[debtor.SSN()] = debtor.ClearEvents()
	return nil
}

// FindBySSN retrieves a debtor by exact ssn match.
func (r *DebtorRepository) FindBySSN(_ context.Context, ssn string) (model.Debtor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	debtor, ok := r.debtors[ssn]
	if !ok {
		return model.Debtor{}, fmt.Errorf("%w: %q", port.ErrDebtorNotFound, ssn)
	}
	return debtor, nil
}
