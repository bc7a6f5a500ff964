package service

import (
	"context"
	"fmt"
	"time"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// StorageAuditSink implements ports.AuditSink on top of the repositories.
type StorageAuditSink struct {
	tickets      ports.TicketRepository
	validations  ports.ValidationRepository
	transactions ports.CreditTransactionRepository
	now          func() time.Time
}

// NewStorageAuditSink creates a sink writing to the secondary log.
func NewStorageAuditSink(
	tickets ports.TicketRepository,
	validations ports.ValidationRepository,
	transactions ports.CreditTransactionRepository,
) *StorageAuditSink {
	return &StorageAuditSink{
		tickets:      tickets,
		validations:  validations,
		transactions: transactions,
		now:          time.Now,
	}
}

func (s *StorageAuditSink) RegisterValidation(ctx context.Context, tx pgx.Tx, rec *domain.ValidationRecord) error {
	if err := s.validations.Create(ctx, tx, rec); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	return nil
}

func (s *StorageAuditSink) RegisterTicketUpdate(ctx context.Context, tx pgx.Tx, ticket *domain.TicketState) error {
	if err := s.tickets.Upsert(ctx, tx, ticket.Snapshot(s.now().UTC())); err != nil {
		return fmt.Errorf("register ticket update: %w", err)
	}
	return nil
}

func (s *StorageAuditSink) RegisterTransaction(ctx context.Context, tx pgx.Tx, txn *domain.CreditTransaction) error {
	if err := s.transactions.Create(ctx, tx, txn); err != nil {
		return fmt.Errorf("register transaction: %w", err)
	}
	return nil
}

// dispatchEvents forwards engine events to the sink in emission order.
func dispatchEvents(ctx context.Context, tx pgx.Tx, sink ports.AuditSink, events []domain.AuditEvent) error {
	for _, e := range events {
		var err error
		switch e.Kind {
		case domain.AuditEventValidation:
			err = sink.RegisterValidation(ctx, tx, e.Validation)
		case domain.AuditEventTicketUpdate:
			err = sink.RegisterTicketUpdate(ctx, tx, e.Ticket)
		case domain.AuditEventCreditTransaction:
			err = sink.RegisterTransaction(ctx, tx, e.Transaction)
		default:
			err = fmt.Errorf("unknown audit event kind %q", e.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
