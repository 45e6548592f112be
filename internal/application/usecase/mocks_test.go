package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/JWatus/MiCuentaApp/internal/domain/event"
	"github.com/JWatus/MiCuentaApp/internal/domain/model"
)

type mockDebtorRepository struct {
	findBySSNFunc func(ctx context.Context, ssn string) (model.Debtor, error)
	saveFunc      func(ctx context.Context, debtor model.Debtor) error
	savedDebtors  []model.Debtor
}

func (m *mockDebtorRepository) FindBySSN(ctx context.Context, ssn string) (model.Debtor, error) {
	if m.findBySSNFunc != nil {
		return m.findBySSNFunc(ctx, ssn)
	}
	return model.Debtor{}, nil
}

func (m *mockDebtorRepository) Save(ctx context.Context, debtor model.Debtor) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, debtor); err != nil {
			return err
		}
	}
	m.savedDebtors = append(m.savedDebtors, debtor)
	return nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		if err := m.publishFunc(ctx, evts...); err != nil {
			return err
		}
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
