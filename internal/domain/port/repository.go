package port

import (
	"context"
	"errors"

	"github.com/JWatus/MiCuentaApp/internal/domain/event"
	"github.com/JWatus/MiCuentaApp/internal/domain/model"
)

// ErrDebtorNotFound is returned when no debtor exists for the given ssn.
var ErrDebtorNotFound = errors.New("debtor not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// DebtorRepository persists and retrieves debtors.
//
// Implementations must serialize concurrent writes against the same debtor
// (per-debtor lock or transactional isolation): AllocatePayment performs no
// locking and relies on single-writer-per-debtor discipline.
type DebtorRepository interface {
	Save(ctx context.Context, debtor model.Debtor) error
	FindBySSN(ctx context.Context, ssn string) (model.Debtor, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
