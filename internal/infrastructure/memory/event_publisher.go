package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JWatus/MiCuentaApp/internal/domain/event"
)

// EventPublisher is an in-process port.EventPublisher. Events are retained in
// publish order so embedding callers can drain them; each publish is also
// logged for traceability. The broker-backed adapter lives with the messaging
// collaborator.
type EventPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
	logger *slog.Logger
}

// NewEventPublisher creates an empty publisher.
func NewEventPublisher(logger *slog.Logger) *EventPublisher {
	return &EventPublisher{logger: logger}
}

// Publish appends the events to the retained stream.
func (p *EventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, evts...)
	for _, e := range evts {
		p.logger.DebugContext(ctx, "domain event published",
			slog.String("event_type", e.EventType()),
			slog.String("aggregate_id", e.AggregateID()),
			slog.String("event_id", e.EventID().String()),
		)
	}
	return nil
}

// Drain returns the retained events and resets the stream.
func (p *EventPublisher) Drain() []event.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	drained := p.events
	p.events = nil
	return drained
}
